package library

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/internal/memory"
	"github.com/mesh-intelligence/shelf/internal/sqlite"
	"github.com/mesh-intelligence/shelf/internal/testutil"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

// backends lists the stores every library test runs against.
var backends = []struct {
	name string
	open func(t *testing.T) types.Store
}{
	{
		name: "memory",
		open: func(t *testing.T) types.Store { return memory.NewStore() },
	},
	{
		name: "sqlite",
		open: func(t *testing.T) types.Store {
			b, err := sqlite.Open()
			require.NoError(t, err)
			return b
		},
	},
}

func forEachBackend(t *testing.T, fn func(t *testing.T, lib *Library)) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			store := be.open(t)
			t.Cleanup(func() { _ = store.Close() })
			fn(t, New(store, nil))
		})
	}
}

func TestAdd(t *testing.T) {
	forEachBackend(t, func(t *testing.T, lib *Library) {
		book, err := lib.Add("Dune", "Herbert", 1965)
		require.NoError(t, err)
		assert.Equal(t, 1, book.ID)
		assert.True(t, book.Available)

		second, err := lib.Add("Emma", "Austen", 1815)
		require.NoError(t, err)
		assert.Equal(t, 2, second.ID)

		n, err := lib.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestAddInvalidLeavesLibraryUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		author string
		year   int
	}{
		{name: "blank title", title: " ", author: "Herbert", year: 1965},
		{name: "blank author", title: "Dune", author: "", year: 1965},
		{name: "year too early", title: "Dune", author: "Herbert", year: 1499},
		{name: "year too late", title: "Dune", author: "Herbert", year: 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forEachBackend(t, func(t *testing.T, lib *Library) {
				book, err := lib.Add(tt.title, tt.author, tt.year)
				assert.Nil(t, book)
				var verr *types.ValidationError
				assert.True(t, errors.As(err, &verr), "expected *types.ValidationError, got %v", err)

				n, err := lib.Len()
				require.NoError(t, err)
				assert.Equal(t, 0, n)

				next, err := lib.Add("Valid", "Author", 2000)
				require.NoError(t, err)
				assert.Equal(t, 1, next.ID, "rejected books consume no ID")
			})
		})
	}
}

func TestSearchByTitle(t *testing.T) {
	forEachBackend(t, func(t *testing.T, lib *Library) {
		_, err := lib.Add("The Great Gatsby", "Fitzgerald", 1925)
		require.NoError(t, err)
		_, err = lib.Add("Dune", "Herbert", 1965)
		require.NoError(t, err)
		_, err = lib.Add("Great Expectations", "Dickens", 1861)
		require.NoError(t, err)

		for _, q := range []string{"great", "GATSBY", "the great"} {
			matches, err := lib.SearchByTitle(q)
			require.NoError(t, err)
			require.NotEmpty(t, matches, "query %q", q)
			assert.Equal(t, "The Great Gatsby", matches[0].Title)
		}

		matches, err := lib.SearchByTitle("great")
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "Great Expectations", matches[1].Title, "matches keep insertion order")

		matches, err = lib.SearchByTitle("moby")
		require.NoError(t, err)
		assert.Empty(t, matches)

		matches, err = lib.SearchByTitle("")
		require.NoError(t, err)
		assert.Len(t, matches, 3, "empty query matches everything")
	})
}

func TestBorrowAndReturn(t *testing.T) {
	forEachBackend(t, func(t *testing.T, lib *Library) {
		book, err := lib.Add("Dune", "Herbert", 1965)
		require.NoError(t, err)

		got, err := lib.Borrow(book.ID)
		require.NoError(t, err)
		assert.False(t, got.Available)

		got, err = lib.Borrow(book.ID)
		assert.ErrorIs(t, err, types.ErrAlreadyBorrowed)
		require.NotNil(t, got)
		assert.False(t, got.Available, "borrowing twice leaves the book out")

		got, err = lib.Return(book.ID)
		require.NoError(t, err)
		assert.True(t, got.Available)

		got, err = lib.Return(book.ID)
		assert.ErrorIs(t, err, types.ErrNotBorrowed)
		assert.True(t, got.Available)

		books, err := lib.Books()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.True(t, books[0].Available)
	})
}

func TestBorrowReturnUnknownID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, lib *Library) {
		_, err := lib.Borrow(1)
		assert.ErrorIs(t, err, types.ErrNotFound)
		_, err = lib.Return(1)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, lib *Library) {
		_, err := lib.Add("Dune", "Herbert", 1965)
		require.NoError(t, err)
		emma, err := lib.Add("Emma", "Austen", 1815)
		require.NoError(t, err)

		_, err = lib.Delete(99)
		assert.ErrorIs(t, err, types.ErrNotFound)
		n, err := lib.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n, "deleting an unknown id changes nothing")

		deleted, err := lib.Delete(emma.ID)
		require.NoError(t, err)
		assert.Equal(t, "Emma", deleted.Title)

		books, err := lib.Books()
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)

		_, err = lib.Delete(emma.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestDuneScenario(t *testing.T) {
	forEachBackend(t, func(t *testing.T, lib *Library) {
		book, err := lib.Add("Dune", "Herbert", 1965)
		require.NoError(t, err)
		assert.Equal(t, 1, book.ID)
		assert.True(t, book.Available)

		_, err = lib.Borrow(1)
		require.NoError(t, err)
		_, err = lib.Borrow(1)
		assert.ErrorIs(t, err, types.ErrAlreadyBorrowed)
		_, err = lib.Return(1)
		require.NoError(t, err)
		_, err = lib.Delete(1)
		require.NoError(t, err)

		books, err := lib.Books()
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestClosedStoreErrorsAreWrapped(t *testing.T) {
	store := memory.NewStore()
	lib := New(store, nil)
	require.NoError(t, store.Close())

	_, err := lib.Books()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = lib.Borrow(1)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.NotErrorIs(t, err, types.ErrNotFound)
	_, err = lib.Add("Dune", "Herbert", 1965)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestLogsOperations(t *testing.T) {
	logs := testutil.NewLogHandler()
	lib := New(memory.NewStore(), logs.Logger())

	_, err := lib.Add("Dune", "Herbert", 1965)
	require.NoError(t, err)
	_, err = lib.Add("", "Herbert", 1965)
	require.Error(t, err)
	_, err = lib.Borrow(1)
	require.NoError(t, err)
	_, err = lib.Return(1)
	require.NoError(t, err)
	_, err = lib.Delete(1)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"book added",
		"book rejected",
		"book borrowed",
		"book returned",
		"book deleted",
	}, logs.Messages())

	id, ok := logs.Attr("book added", "id")
	require.True(t, ok)
	assert.Equal(t, int64(1), id.Int64())
}
