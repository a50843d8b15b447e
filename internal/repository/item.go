package repository

import (
	"context"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// Item defines the interface for item catalog persistence
type Item interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetItemByID(ctx context.Context, id int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	InsertItem(ctx context.Context, item *domain.Item) (int, error)
	UpdateItem(ctx context.Context, itemID int, item *domain.Item) error

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
