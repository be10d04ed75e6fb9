// Package storetest provides a behavioral test suite that every types.Store
// implementation must pass.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Factory returns a fresh, empty store. The suite closes it.
type Factory func(t *testing.T) types.Store

// Run exercises a store implementation against the Store contract.
func Run(t *testing.T, newStore Factory) {
	t.Run("empty store", func(t *testing.T) {
		s := open(t, newStore)

		all, err := s.All()
		require.NoError(t, err)
		assert.Empty(t, all)

		n, err := s.Len()
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		_, err = s.FindByID(1)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("add keeps insertion order", func(t *testing.T) {
		s := open(t, newStore)
		books := addBooks(t, s, "Dune", "Emma", "Beloved")

		all, err := s.All()
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, b := range all {
			assert.Equal(t, books[i].ID, b.ID)
			assert.Equal(t, books[i].Title, b.Title)
		}
	})

	t.Run("find by id", func(t *testing.T) {
		s := open(t, newStore)
		books := addBooks(t, s, "Dune", "Emma")

		got, err := s.FindByID(books[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Emma", got.Title)
		assert.Equal(t, "Author", got.Author)
		assert.Equal(t, 1990, got.Year)
		assert.True(t, got.Available)

		_, err = s.FindByID(99)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("update records availability", func(t *testing.T) {
		s := open(t, newStore)
		books := addBooks(t, s, "Dune")

		b, err := s.FindByID(books[0].ID)
		require.NoError(t, err)
		require.NoError(t, b.MarkBorrowed())
		require.NoError(t, s.Update(b))

		again, err := s.FindByID(books[0].ID)
		require.NoError(t, err)
		assert.False(t, again.Available)

		err = s.Update(&types.Book{ID: 42, Title: "Ghost", Author: "None", Year: 2000})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("remove deletes exactly one book", func(t *testing.T) {
		s := open(t, newStore)
		books := addBooks(t, s, "Dune", "Emma", "Beloved")

		target, err := s.FindByID(books[1].ID)
		require.NoError(t, err)
		require.NoError(t, s.Remove(target))

		n, err := s.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = s.FindByID(books[1].ID)
		assert.ErrorIs(t, err, types.ErrNotFound)

		all, err := s.All()
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Dune", all[0].Title)
		assert.Equal(t, "Beloved", all[1].Title)

		assert.ErrorIs(t, s.Remove(target), types.ErrNotFound, "second remove finds nothing")
	})

	t.Run("ids are not reused after remove", func(t *testing.T) {
		s := open(t, newStore)
		var seq types.Sequence
		first := mustBook(t, &seq, "First")
		require.NoError(t, s.Add(first))
		require.NoError(t, s.Remove(first))

		second := mustBook(t, &seq, "Second")
		require.NoError(t, s.Add(second))
		assert.NotEqual(t, first.ID, second.ID)

		_, err := s.FindByID(first.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("closed store", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())
		require.NoError(t, s.Close(), "Close is idempotent")

		_, err := s.All()
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		_, err = s.FindByID(1)
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		assert.ErrorIs(t, s.Add(&types.Book{ID: 1}), types.ErrStoreClosed)
	})
}

func open(t *testing.T, newStore Factory) types.Store {
	t.Helper()
	s := newStore(t)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustBook(t *testing.T, seq *types.Sequence, title string) *types.Book {
	t.Helper()
	b, err := types.NewBook(seq, title, "Author", 1990)
	require.NoError(t, err)
	return b
}

func addBooks(t *testing.T, s types.Store, titles ...string) []*types.Book {
	t.Helper()
	var seq types.Sequence
	books := make([]*types.Book, 0, len(titles))
	for _, title := range titles {
		b := mustBook(t, &seq, title)
		require.NoError(t, s.Add(b))
		books = append(books, b)
	}
	return books
}
