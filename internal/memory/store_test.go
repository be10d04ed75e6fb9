package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shelf/internal/storetest"
	"github.com/mesh-intelligence/shelf/pkg/types"
)

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) types.Store {
		return NewStore()
	})
}

func TestRemoveMatchesInstanceNotID(t *testing.T) {
	s := NewStore()
	b := &types.Book{ID: 1, Title: "Dune", Author: "Herbert", Year: 1965, Available: true}
	require.NoError(t, s.Add(b))

	twin := *b
	assert.ErrorIs(t, s.Remove(&twin), types.ErrNotFound)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.Remove(b))
	n, err = s.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(&types.Book{ID: 1, Title: "Dune"}))

	all, err := s.All()
	require.NoError(t, err)
	all[0] = nil

	again, err := s.All()
	require.NoError(t, err)
	require.NotNil(t, again[0])
	assert.Equal(t, "Dune", again[0].Title)
}

func TestFindByIDSharesInstance(t *testing.T) {
	s := NewStore()
	b := &types.Book{ID: 7, Title: "Emma", Available: true}
	require.NoError(t, s.Add(b))

	got, err := s.FindByID(7)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestAddRejectsNil(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Add(nil), types.ErrInvalidData)
}
