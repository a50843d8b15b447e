package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreQuest_Go/internal/database/generated"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

// ItemRepository implements repository.Item for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) repository.Item {
	return &ItemRepository{
		db: db,
		q:  generated.New(db),
	}
}

// GetAllItems retrieves all items ordered by name
func (r *ItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItems, err)
	}

	items := make([]domain.Item, len(rows))
	for i, row := range rows {
		items[i] = mapItemRow(row)
	}
	return items, nil
}

// GetItemByID retrieves an item by ID
func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	return mapItemResult(r.q.GetItemByID(ctx, int32(id)))
}

// GetItemByName retrieves an item by its unique name
func (r *ItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return mapItemResult(r.q.GetItemByName(ctx, name))
}

// InsertItem inserts a catalog item and returns its ID
func (r *ItemRepository) InsertItem(ctx context.Context, it *domain.Item) (int, error) {
	id, err := r.q.InsertItem(ctx, generated.InsertItemParams{
		Name:              it.Name,
		Slot:              string(it.Slot),
		ItemType:          it.ItemType,
		Rarity:            string(it.Rarity),
		Description:       it.Description,
		Weight:            it.Weight,
		Value:             int32(it.Value),
		Stacksize:         int32(it.Stacksize),
		MaxDurability:     int32(it.MaxDurability),
		IsRepairable:      it.IsRepairable,
		StrengthBonus:     int32(it.Bonuses.Strength),
		DexterityBonus:    int32(it.Bonuses.Dexterity),
		IntelligenceBonus: int32(it.Bonuses.Intelligence),
		ConstitutionBonus: int32(it.Bonuses.Constitution),
		WisdomBonus:       int32(it.Bonuses.Wisdom),
		CharismaBonus:     int32(it.Bonuses.Charisma),
		HitpointsBonus:    int32(it.Bonuses.Hitpoints),
		ManaBonus:         int32(it.Bonuses.Mana),
		RequiredLevel:     int32(it.RequiredLevel),
		Icon:              it.Icon,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	return int(id), nil
}

// UpdateItem overwrites the catalog fields of an existing item
func (r *ItemRepository) UpdateItem(ctx context.Context, itemID int, it *domain.Item) error {
	affected, err := r.q.UpdateItem(ctx, generated.UpdateItemParams{
		Name:              it.Name,
		Slot:              string(it.Slot),
		ItemType:          it.ItemType,
		Rarity:            string(it.Rarity),
		Description:       it.Description,
		Weight:            it.Weight,
		Value:             int32(it.Value),
		Stacksize:         int32(it.Stacksize),
		MaxDurability:     int32(it.MaxDurability),
		IsRepairable:      it.IsRepairable,
		StrengthBonus:     int32(it.Bonuses.Strength),
		DexterityBonus:    int32(it.Bonuses.Dexterity),
		IntelligenceBonus: int32(it.Bonuses.Intelligence),
		ConstitutionBonus: int32(it.Bonuses.Constitution),
		WisdomBonus:       int32(it.Bonuses.Wisdom),
		CharismaBonus:     int32(it.Bonuses.Charisma),
		HitpointsBonus:    int32(it.Bonuses.Hitpoints),
		ManaBonus:         int32(it.Bonuses.Mana),
		RequiredLevel:     int32(it.RequiredLevel),
		Icon:              it.Icon,
		ItemID:            int32(itemID),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateItem, err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// GetSyncMetadata returns the last sync record for a config file, or nil if it never synced
func (r *ItemRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	row, err := r.q.GetSyncMetadata(ctx, configName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMetadata, err)
	}
	return &domain.SyncMetadata{
		ConfigName:   row.ConfigName,
		LastSyncTime: row.LastSyncTime.Time,
		FileHash:     row.FileHash,
		FileModTime:  row.FileModTime.Time,
	}, nil
}

// UpsertSyncMetadata records a completed sync
func (r *ItemRepository) UpsertSyncMetadata(ctx context.Context, m *domain.SyncMetadata) error {
	err := r.q.UpsertSyncMetadata(ctx, generated.UpsertSyncMetadataParams{
		ConfigName:   m.ConfigName,
		FileHash:     m.FileHash,
		FileModTime:  timestamptz(m.FileModTime),
		LastSyncTime: timestamptz(m.LastSyncTime),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSyncMetadata, err)
	}
	return nil
}

func mapItemResult(row generated.Item, err error) (*domain.Item, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	it := mapItemRow(row)
	return &it, nil
}

// Helper to map SQLC item row to domain model
func mapItemRow(row generated.Item) domain.Item {
	return domain.Item{
		ID:            int(row.ItemID),
		Name:          row.Name,
		Slot:          domain.Slot(row.Slot),
		ItemType:      row.ItemType,
		Rarity:        domain.Rarity(row.Rarity),
		Description:   row.Description,
		Weight:        row.Weight,
		Value:         int(row.Value),
		Stacksize:     int(row.Stacksize),
		MaxDurability: int(row.MaxDurability),
		IsRepairable:  row.IsRepairable,
		Bonuses: domain.ItemBonuses{
			Strength:     int(row.StrengthBonus),
			Dexterity:    int(row.DexterityBonus),
			Intelligence: int(row.IntelligenceBonus),
			Constitution: int(row.ConstitutionBonus),
			Wisdom:       int(row.WisdomBonus),
			Charisma:     int(row.CharismaBonus),
			Hitpoints:    int(row.HitpointsBonus),
			Mana:         int(row.ManaBonus),
		},
		RequiredLevel: int(row.RequiredLevel),
		Icon:          row.Icon,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
