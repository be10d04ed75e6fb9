// Package sqlite implements a book store on an in-memory SQLite database.
// The database lives only as long as the Backend is attached; nothing is
// written to disk.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// memoryDSN opens a private in-memory database. Each connection to this DSN
// gets its own database, so the pool is pinned to one connection.
const memoryDSN = ":memory:"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store on SQLite.
type Backend struct {
	db       *sql.DB
	attached bool
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Open creates and attaches a backend in one step.
func Open() (*Backend, error) {
	b := NewBackend()
	if err := b.Attach(); err != nil {
		return nil, err
	}
	return b, nil
}

// Attach opens a fresh in-memory database and creates the schema.
// Attaching an already attached backend is a no-op.
func (b *Backend) Attach() error {
	if b.attached {
		return nil
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("opening sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database, discarding every book. Idempotent.
func (b *Backend) Detach() error {
	if !b.attached {
		return nil
	}
	b.attached = false
	db := b.db
	b.db = nil
	return db.Close()
}

// Close implements types.Store by detaching the backend.
func (b *Backend) Close() error {
	return b.Detach()
}
