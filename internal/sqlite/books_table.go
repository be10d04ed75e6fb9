package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

const selectBook = "SELECT id, title, author, year, available FROM books"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Add inserts book as a new row.
func (b *Backend) Add(book *types.Book) error {
	if !b.attached {
		return types.ErrStoreClosed
	}
	if book == nil {
		return types.ErrInvalidData
	}
	_, err := b.db.Exec(
		"INSERT INTO books (id, title, author, year, available) VALUES (?, ?, ?, ?, ?)",
		book.ID, book.Title, book.Author, book.Year, book.Available,
	)
	if err != nil {
		return fmt.Errorf("inserting book %d: %w", book.ID, err)
	}
	return nil
}

// FindByID loads the book with the given ID. Each call returns a new *Book;
// changes to it are stored with Update.
func (b *Backend) FindByID(id int) (*types.Book, error) {
	if !b.attached {
		return nil, types.ErrStoreClosed
	}
	row := b.db.QueryRow(selectBook+" WHERE id = ?", id)
	book, err := hydrateBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting book %d: %w", id, err)
	}
	return book, nil
}

// Update writes the book's fields back to its row.
func (b *Backend) Update(book *types.Book) error {
	if !b.attached {
		return types.ErrStoreClosed
	}
	if book == nil {
		return types.ErrNotFound
	}
	res, err := b.db.Exec(
		"UPDATE books SET title = ?, author = ?, year = ?, available = ? WHERE id = ?",
		book.Title, book.Author, book.Year, book.Available, book.ID,
	)
	if err != nil {
		return fmt.Errorf("updating book %d: %w", book.ID, err)
	}
	return expectOneRow(res, book.ID)
}

// Remove deletes the row for book. IDs are unique, so the row with the
// book's ID is that book.
func (b *Backend) Remove(book *types.Book) error {
	if !b.attached {
		return types.ErrStoreClosed
	}
	if book == nil {
		return types.ErrNotFound
	}
	res, err := b.db.Exec("DELETE FROM books WHERE id = ?", book.ID)
	if err != nil {
		return fmt.Errorf("deleting book %d: %w", book.ID, err)
	}
	return expectOneRow(res, book.ID)
}

// All returns every book ordered by ID.
func (b *Backend) All() ([]*types.Book, error) {
	if !b.attached {
		return nil, types.ErrStoreClosed
	}
	rows, err := b.db.Query(selectBook + " ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []*types.Book
	for rows.Next() {
		book, err := hydrateBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

// Len counts the stored books.
func (b *Backend) Len() (int, error) {
	if !b.attached {
		return 0, types.ErrStoreClosed
	}
	var n int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM books").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return n, nil
}

func hydrateBook(row rowScanner) (*types.Book, error) {
	var book types.Book
	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Year, &book.Available); err != nil {
		return nil, err
	}
	return &book, nil
}

func expectOneRow(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("book %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
