package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

func TestItemRepository_InsertUpdateGet(t *testing.T) {
	pool := setupTest(t)
	ctx := context.Background()
	repo := NewItemRepository(pool)

	sword := createTestItem(t, pool, "sword", "3.50", 1)

	got, err := repo.GetItemByName(ctx, "sword")
	require.NoError(t, err)
	assert.Equal(t, sword.ID, got.ID)
	assert.True(t, got.Weight.Equal(decimal.RequireFromString("3.5")))

	got.Bonuses.Strength = 4
	got.Rarity = domain.RarityRare
	require.NoError(t, repo.UpdateItem(ctx, got.ID, got))

	updated, err := repo.GetItemByID(ctx, sword.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Bonuses.Strength)
	assert.Equal(t, domain.RarityRare, updated.Rarity)

	all, err := repo.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetItemByName(ctx, "shield")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.ErrorIs(t, repo.UpdateItem(ctx, 999, got), domain.ErrItemNotFound)
}

func TestItemRepository_SyncMetadata(t *testing.T) {
	pool := setupTest(t)
	ctx := context.Background()
	repo := NewItemRepository(pool)

	meta, err := repo.GetSyncMetadata(ctx, "items.json")
	require.NoError(t, err)
	assert.Nil(t, meta)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName: "items.json", LastSyncTime: now, FileHash: "abc", FileModTime: now,
	}))
	require.NoError(t, repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName: "items.json", LastSyncTime: now, FileHash: "def", FileModTime: now,
	}))

	meta, err = repo.GetSyncMetadata(ctx, "items.json")
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "def", meta.FileHash)
}
