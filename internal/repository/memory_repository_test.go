package repository

import (
	"context"
	"testing"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetRecord(context.Background(), "campaign-storage")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestMemoryRepository_PutGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.PutRecord(ctx, "k", []byte("first")))
	require.NoError(t, repo.PutRecord(ctx, "k", []byte("second")))

	data, err := repo.GetRecord(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
	assert.Equal(t, 1, repo.Size())
}

func TestMemoryRepository_CopiesData(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	input := []byte("abc")
	require.NoError(t, repo.PutRecord(ctx, "k", input))
	input[0] = 'x'

	data, err := repo.GetRecord(ctx, "k")
	require.NoError(t, err)
	data[1] = 'y'

	again, err := repo.GetRecord(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemoryRepository_BacksStore(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	s := store.New(ctx, repo)
	created := s.Add(ctx, draftFor("Promo Blast"))

	reloaded := store.New(ctx, repo)
	got, ok := reloaded.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
	assert.Len(t, reloaded.Campaigns(), 4)
}
