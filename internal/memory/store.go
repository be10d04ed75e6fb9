// Package memory implements the default in-process book store: a slice kept
// in insertion order and searched linearly.
package memory

import (
	"slices"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

var _ types.Store = (*Store)(nil)

// Store keeps books in a slice. Lookups scan the slice; the collections this
// store is used for are small.
type Store struct {
	books  []*types.Book
	closed bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends book.
func (s *Store) Add(book *types.Book) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	if book == nil {
		return types.ErrInvalidData
	}
	s.books = append(s.books, book)
	return nil
}

// FindByID returns the first book with the given ID.
func (s *Store) FindByID(id int) (*types.Book, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, types.ErrNotFound
}

// Update checks that book is held by the store. Books are held by pointer,
// so the change is already visible.
func (s *Store) Update(book *types.Book) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	if s.indexOf(book) < 0 {
		return types.ErrNotFound
	}
	return nil
}

// Remove deletes the given book instance. A different *Book with the same
// ID does not match.
func (s *Store) Remove(book *types.Book) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	i := s.indexOf(book)
	if i < 0 {
		return types.ErrNotFound
	}
	s.books = slices.Delete(s.books, i, i+1)
	return nil
}

// All returns a copy of the book list in insertion order.
func (s *Store) All() ([]*types.Book, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	return slices.Clone(s.books), nil
}

// Len returns the number of books held.
func (s *Store) Len() (int, error) {
	if s.closed {
		return 0, types.ErrStoreClosed
	}
	return len(s.books), nil
}

// Close drops all books. Idempotent.
func (s *Store) Close() error {
	s.books = nil
	s.closed = true
	return nil
}

func (s *Store) indexOf(book *types.Book) int {
	if book == nil {
		return -1
	}
	return slices.Index(s.books, book)
}
