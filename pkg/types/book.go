package types

import (
	"fmt"
	"strings"
)

// Publication year bounds accepted for a Book, inclusive.
const (
	MinYear = 1500
	MaxYear = 2025
)

// Book is a titled work held by the library.
type Book struct {
	ID        int    `json:"id"`        // Assigned from a Sequence on creation; never reused.
	Title     string `json:"title"`     // Stored as entered; never blank.
	Author    string `json:"author"`    // Stored as entered; never blank.
	Year      int    `json:"year"`      // Between MinYear and MaxYear.
	Available bool   `json:"available"` // False while the book is borrowed.
}

// bookFields is the trimmed view of the constructor input that validation
// runs against. The year tags must match MinYear and MaxYear.
type bookFields struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Year   int    `validate:"min=1500,max=2025"`
}

// NewBook validates title, author and year and returns an available Book
// with the next ID from seq. On failure it returns a *ValidationError for the
// first invalid field (title, then author, then year) and seq is not
// advanced.
func NewBook(seq *Sequence, title, author string, year int) (*Book, error) {
	in := bookFields{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Year:   year,
	}
	if err := checkFields("book", in); err != nil {
		return nil, err
	}

	return &Book{
		ID:        seq.Next(),
		Title:     title,
		Author:    author,
		Year:      year,
		Available: true,
	}, nil
}

// MarkBorrowed makes the book unavailable.
// Returns ErrAlreadyBorrowed, leaving the book unchanged, if it is already out.
func (b *Book) MarkBorrowed() error {
	if !b.Available {
		return ErrAlreadyBorrowed
	}
	b.Available = false
	return nil
}

// MarkReturned makes the book available again.
// Returns ErrNotBorrowed, leaving the book unchanged, if it was not out.
func (b *Book) MarkReturned() error {
	if b.Available {
		return ErrNotBorrowed
	}
	b.Available = true
	return nil
}

// TitleContains reports whether query occurs in the title, ignoring case.
// An empty query matches every title.
func (b *Book) TitleContains(query string) bool {
	return strings.Contains(strings.ToLower(b.Title), strings.ToLower(query))
}

func (b *Book) String() string {
	return fmt.Sprintf("Book{id=%d, title='%s', author='%s', year=%d, available=%t}",
		b.ID, b.Title, b.Author, b.Year, b.Available)
}
