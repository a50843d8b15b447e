package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/item"
	"github.com/osse101/ChoreQuest_Go/mocks"
)

func TestSyncItems(t *testing.T) {
	t.Run("reports inserted items", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)
		svc.On("Sync", mock.Anything).Return(&item.SyncResult{ItemsInserted: 3}, nil)

		result, err := SyncItems(context.Background(), svc)
		require.NoError(t, err)
		assert.Equal(t, 3, result.ItemsInserted)
	})

	t.Run("unchanged config", func(t *testing.T) {
		svc := mocks.NewMockItemService(t)
		svc.On("Sync", mock.Anything).Return(&item.SyncResult{Unchanged: true}, nil)

		result, err := SyncItems(context.Background(), svc)
		require.NoError(t, err)
		assert.True(t, result.Unchanged)
	})

	t.Run("wraps sync failure", func(t *testing.T) {
		cause := errors.New("db down")
		svc := mocks.NewMockItemService(t)
		svc.On("Sync", mock.Anything).Return(nil, cause)

		_, err := SyncItems(context.Background(), svc)
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), ErrMsgFailedSyncItems)
	})
}

func TestLoadLootTables(t *testing.T) {
	tables, err := LoadLootTables("../../configs/loot_tables.json")
	require.NoError(t, err)
	assert.NotEmpty(t, tables.Names())

	_, err = LoadLootTables("does-not-exist.json")
	assert.ErrorContains(t, err, ErrMsgFailedLoadLootTables)
}
