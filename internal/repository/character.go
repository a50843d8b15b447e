package repository

import (
	"context"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// Character defines the interface for character and inventory persistence
type Character interface {
	CreateCharacter(ctx context.Context, character *domain.Character) error
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	ListCharactersByUser(ctx context.Context, userID string) ([]domain.Character, error)
	DeleteCharacter(ctx context.Context, characterID int64) error
	SetActiveCharacter(ctx context.Context, userID string, characterID int64) error

	// GetInventory returns the character's stacks ordered by stack ID
	GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryStack, error)

	BeginTx(ctx context.Context) (CharacterTx, error)
}

// CharacterTx is a transaction scoped to character mutations.
// GetCharacterForUpdate locks the character row until commit or rollback.
type CharacterTx interface {
	Tx
	GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, character *domain.Character) error
	GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryStack, error)
	ApplyInventoryChanges(ctx context.Context, characterID int64, changes domain.InventoryChanges) error
}
