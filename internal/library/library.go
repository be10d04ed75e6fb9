// Package library implements the book operations behind the shelf menu:
// add, list, search, borrow, return and delete. A Library owns its store and
// the sequence its book IDs are drawn from.
package library

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Library is a collection of books backed by a types.Store.
// It is not safe for concurrent use.
type Library struct {
	store types.Store
	ids   types.Sequence
	log   *slog.Logger
}

// New returns a Library over store. A nil logger discards log output.
func New(store types.Store, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Library{store: store, log: logger}
}

// Add creates a book and appends it to the library. Invalid input yields a
// *types.ValidationError and leaves the library unchanged.
func (l *Library) Add(title, author string, year int) (*types.Book, error) {
	book, err := types.NewBook(&l.ids, title, author, year)
	if err != nil {
		l.log.Debug("book rejected", "error", err)
		return nil, err
	}
	if err := l.store.Add(book); err != nil {
		return nil, fmt.Errorf("adding book: %w", err)
	}
	l.log.Info("book added", "id", book.ID, "title", book.Title)
	return book, nil
}

// Books returns every book in the order it was added.
func (l *Library) Books() ([]*types.Book, error) {
	books, err := l.store.All()
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

// SearchByTitle returns the books whose title contains query, ignoring case,
// in the order they were added.
func (l *Library) SearchByTitle(query string) ([]*types.Book, error) {
	books, err := l.Books()
	if err != nil {
		return nil, err
	}
	var matches []*types.Book
	for _, b := range books {
		if b.TitleContains(query) {
			matches = append(matches, b)
		}
	}
	l.log.Debug("title search", "query", query, "matches", len(matches))
	return matches, nil
}

// Borrow marks the book unavailable. It returns types.ErrNotFound for an
// unknown ID and types.ErrAlreadyBorrowed if the book is already out.
func (l *Library) Borrow(id int) (*types.Book, error) {
	return l.transition(id, "borrowed", (*types.Book).MarkBorrowed)
}

// Return marks the book available. It returns types.ErrNotFound for an
// unknown ID and types.ErrNotBorrowed if the book was not out.
func (l *Library) Return(id int) (*types.Book, error) {
	return l.transition(id, "returned", (*types.Book).MarkReturned)
}

// Delete removes the book with the given ID and returns it.
// It returns types.ErrNotFound for an unknown ID.
func (l *Library) Delete(id int) (*types.Book, error) {
	book, err := l.find(id)
	if err != nil {
		return nil, err
	}
	if err := l.store.Remove(book); err != nil {
		return nil, fmt.Errorf("deleting book %d: %w", id, err)
	}
	l.log.Info("book deleted", "id", id)
	return book, nil
}

// Len returns the number of books in the library.
func (l *Library) Len() (int, error) {
	n, err := l.store.Len()
	if err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return n, nil
}

func (l *Library) transition(id int, verb string, apply func(*types.Book) error) (*types.Book, error) {
	book, err := l.find(id)
	if err != nil {
		return nil, err
	}
	if err := apply(book); err != nil {
		l.log.Debug("book unchanged", "id", id, "reason", err)
		return book, err
	}
	if err := l.store.Update(book); err != nil {
		return nil, fmt.Errorf("updating book %d: %w", id, err)
	}
	l.log.Info("book "+verb, "id", id)
	return book, nil
}

func (l *Library) find(id int) (*types.Book, error) {
	book, err := l.store.FindByID(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("finding book %d: %w", id, err)
	}
	return book, nil
}
