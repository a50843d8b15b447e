package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ChoreQuest_Go/internal/item"
	"github.com/osse101/ChoreQuest_Go/internal/loot"
)

// SyncItems syncs the item catalog JSON into the database through the catalog service.
// Hash-based change detection skips the sync when the file is unchanged.
func SyncItems(ctx context.Context, items item.Service) (*item.SyncResult, error) {
	slog.Info(LogMsgSyncingItems)

	result, err := items.Sync(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.Unchanged {
		slog.Info(LogMsgItemsUnchanged)
		return result, nil
	}

	slog.Info(LogMsgItemsSynced,
		"inserted", result.ItemsInserted,
		"updated", result.ItemsUpdated,
		"skipped", result.ItemsSkipped)
	return result, nil
}

// LoadLootTables loads and validates the loot table config
func LoadLootTables(path string) (*loot.Tables, error) {
	tables, err := loot.NewTables(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLootTables, err)
	}
	slog.Info(LogMsgLootTables, "tables", tables.Names())
	return tables, nil
}
