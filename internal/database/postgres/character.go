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

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

var _ repository.Character = (*CharacterRepository)(nil)

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateCharacter inserts a character and fills in its ID and timestamps
func (r *CharacterRepository) CreateCharacter(ctx context.Context, c *domain.Character) error {
	uid, err := parseUserUUID(c.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	row, err := r.q.CreateCharacter(ctx, generated.CreateCharacterParams{
		UserID:                      uid,
		Name:                        c.Name,
		Level:                       int32(c.Level),
		ExperiencePoints:            int32(c.ExperiencePoints),
		ExperiencePointsToNextLevel: int32(c.ExperienceToNextLevel),
		Hitpoints:                   int32(c.Hitpoints),
		HitpointsMax:                int32(c.HitpointsMax),
		Mana:                        int32(c.Mana),
		ManaMax:                     int32(c.ManaMax),
		Strength:                    int32(c.Attributes.Strength),
		Dexterity:                   int32(c.Attributes.Dexterity),
		Intelligence:                int32(c.Attributes.Intelligence),
		Constitution:                int32(c.Attributes.Constitution),
		Wisdom:                      int32(c.Attributes.Wisdom),
		Charisma:                    int32(c.Attributes.Charisma),
		Gold:                        int32(c.Gold),
		MaxInventorySlots:           int32(c.MaxInventorySlots),
		MaxCarryWeight:              c.MaxCarryWeight,
		IsActive:                    c.IsActive,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrCharacterNameTaken
		case isForeignKeyViolation(err):
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateCharacter, err)
	}
	c.ID = row.CharacterID
	c.CreatedAt = row.CreatedAt.Time
	c.UpdatedAt = row.UpdatedAt.Time
	return nil
}

// GetCharacter retrieves a character by ID
func (r *CharacterRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	return mapCharacterResult(r.q.GetCharacter(ctx, characterID))
}

// ListCharactersByUser returns the user's characters ordered by ID
func (r *CharacterRepository) ListCharactersByUser(ctx context.Context, userID string) ([]domain.Character, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return []domain.Character{}, nil
	}
	rows, err := r.q.ListCharactersByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCharacters, err)
	}

	characters := make([]domain.Character, len(rows))
	for i, row := range rows {
		characters[i] = mapCharacterRow(row)
	}
	return characters, nil
}

// DeleteCharacter removes a character; its stacks and quest rows cascade
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, characterID int64) error {
	affected, err := r.q.DeleteCharacter(ctx, characterID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteCharacter, err)
	}
	if affected == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// SetActiveCharacter marks characterID active and every other character of the user inactive
func (r *CharacterRepository) SetActiveCharacter(ctx context.Context, userID string, characterID int64) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return domain.ErrCharacterNotFound
	}
	affected, err := r.q.SetActiveCharacter(ctx, generated.SetActiveCharacterParams{
		CharacterID: characterID,
		UserID:      uid,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToActivate, err)
	}
	if affected == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// GetInventory returns the character's stacks ordered by stack ID
func (r *CharacterRepository) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryStack, error) {
	return getInventory(ctx, r.q, characterID)
}

func getInventory(ctx context.Context, q *generated.Queries, characterID int64) ([]domain.InventoryStack, error) {
	rows, err := q.GetInventory(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	stacks := make([]domain.InventoryStack, len(rows))
	for i, row := range rows {
		stacks[i] = domain.InventoryStack{
			ID:                row.InventoryItemID,
			CharacterID:       row.CharacterID,
			Item:              mapItemRow(row.Item),
			Quantity:          int(row.Quantity),
			CurrentDurability: ptrInt(row.CurrentDurability),
			CreatedAt:         row.CreatedAt.Time,
		}
	}
	return stacks, nil
}

// BeginTx starts a transaction and returns a CharacterTx
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	h, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &characterTx{tx: h.tx, q: h.q}, nil
}

// characterTx implements repository.CharacterTx
type characterTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *characterTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *characterTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *characterTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	return mapCharacterResult(t.q.GetCharacterForUpdate(ctx, characterID))
}

func (t *characterTx) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	updatedAt, err := t.q.UpdateCharacter(ctx, generated.UpdateCharacterParams{
		CharacterID:                 c.ID,
		Level:                       int32(c.Level),
		ExperiencePoints:            int32(c.ExperiencePoints),
		ExperiencePointsToNextLevel: int32(c.ExperienceToNextLevel),
		Hitpoints:                   int32(c.Hitpoints),
		HitpointsMax:                int32(c.HitpointsMax),
		Mana:                        int32(c.Mana),
		ManaMax:                     int32(c.ManaMax),
		Strength:                    int32(c.Attributes.Strength),
		Dexterity:                   int32(c.Attributes.Dexterity),
		Intelligence:                int32(c.Attributes.Intelligence),
		Constitution:                int32(c.Attributes.Constitution),
		Wisdom:                      int32(c.Attributes.Wisdom),
		Charisma:                    int32(c.Attributes.Charisma),
		Gold:                        int32(c.Gold),
		MaxInventorySlots:           int32(c.MaxInventorySlots),
		MaxCarryWeight:              c.MaxCarryWeight,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCharacterNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateCharacter, err)
	}
	c.UpdatedAt = updatedAt.Time
	return nil
}

func (t *characterTx) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryStack, error) {
	return getInventory(ctx, t.q, characterID)
}

// ApplyInventoryChanges writes a ledger changeset. Deletes run first, then updates, then
// inserts in ledger order so new stack IDs keep that order.
func (t *characterTx) ApplyInventoryChanges(ctx context.Context, characterID int64, changes domain.InventoryChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	if len(changes.Deleted) > 0 {
		err := t.q.DeleteInventoryStacks(ctx, generated.DeleteInventoryStacksParams{
			CharacterID: characterID,
			Ids:         changes.Deleted,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToApplyInventory, err)
		}
	}
	for _, s := range changes.Updated {
		err := t.q.UpdateInventoryStack(ctx, generated.UpdateInventoryStackParams{
			CharacterID:       characterID,
			InventoryItemID:   s.ID,
			Quantity:          int32(s.Quantity),
			CurrentDurability: intToInt4(s.CurrentDurability),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToApplyInventory, err)
		}
	}
	for _, s := range changes.Created {
		err := t.q.InsertInventoryStack(ctx, generated.InsertInventoryStackParams{
			CharacterID:       characterID,
			ItemID:            int32(s.Item.ID),
			Quantity:          int32(s.Quantity),
			CurrentDurability: intToInt4(s.CurrentDurability),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToApplyInventory, err)
		}
	}
	return nil
}

func mapCharacterResult(row generated.Character, err error) (*domain.Character, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	c := mapCharacterRow(row)
	return &c, nil
}

// Helper to map SQLC character row to domain model
func mapCharacterRow(row generated.Character) domain.Character {
	return domain.Character{
		ID:                    row.CharacterID,
		UserID:                row.UserID.String(),
		Name:                  row.Name,
		Level:                 int(row.Level),
		ExperiencePoints:      int(row.ExperiencePoints),
		ExperienceToNextLevel: int(row.ExperiencePointsToNextLevel),
		Hitpoints:             int(row.Hitpoints),
		HitpointsMax:          int(row.HitpointsMax),
		Mana:                  int(row.Mana),
		ManaMax:               int(row.ManaMax),
		Attributes: domain.Attributes{
			Strength:     int(row.Strength),
			Dexterity:    int(row.Dexterity),
			Intelligence: int(row.Intelligence),
			Constitution: int(row.Constitution),
			Wisdom:       int(row.Wisdom),
			Charisma:     int(row.Charisma),
		},
		Gold:              int(row.Gold),
		MaxInventorySlots: int(row.MaxInventorySlots),
		MaxCarryWeight:    row.MaxCarryWeight,
		IsActive:          row.IsActive,
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}
