package types

import "errors"

// Store holds books in insertion order.
// Lookups are by ID; every book in a store has a unique ID.
type Store interface {
	// Add appends book to the store.
	Add(book *Book) error

	// FindByID returns the book with the given ID.
	// Returns ErrNotFound if no book has that ID.
	FindByID(id int) (*Book, error)

	// Update records a change to a book already in the store.
	// Returns ErrNotFound if the book is not in the store.
	Update(book *Book) error

	// Remove deletes book from the store.
	// Returns ErrNotFound if the book is not in the store.
	Remove(book *Book) error

	// All returns every book in insertion order. The returned slice is
	// owned by the caller.
	All() ([]*Book, error)

	// Len returns the number of books in the store.
	Len() (int, error)

	// Close releases the store. Idempotent. After Close, other methods
	// return ErrStoreClosed.
	Close() error
}

// Store errors.
var (
	ErrNotFound    = errors.New("book not found")
	ErrInvalidData = errors.New("invalid entity data")
	ErrStoreClosed = errors.New("store is closed")
)

// Book state transition errors.
var (
	ErrAlreadyBorrowed = errors.New("book is already borrowed")
	ErrNotBorrowed     = errors.New("book was not borrowed")
)
