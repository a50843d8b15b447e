package character

import (
	"context"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

// ItemCatalog resolves catalog items by name. Unknown names return domain.ErrItemNotFound.
type ItemCatalog interface {
	GetByName(ctx context.Context, name string) (*domain.Item, error)
}

// ManagementService handles the character lifecycle for an owning user.
// Characters owned by someone else are reported as domain.ErrCharacterNotFound.
type ManagementService interface {
	Create(ctx context.Context, userID, name string) (*domain.Character, error)
	List(ctx context.Context, userID string) ([]domain.Character, error)
	Get(ctx context.Context, userID string, characterID int64) (*domain.Character, error)
	Delete(ctx context.Context, userID string, characterID int64) error
	Activate(ctx context.Context, userID string, characterID int64) (*domain.Character, error)
}

// ProgressionService awards experience
type ProgressionService interface {
	AddExperience(ctx context.Context, userID string, characterID int64, points int) (*domain.ExperienceResult, error)
	// AwardExperience skips the ownership check; it backs the admin API.
	AwardExperience(ctx context.Context, characterID int64, points int) (*domain.ExperienceResult, error)
}

// InventoryService reads and mutates a character's inventory
type InventoryService interface {
	GetInventory(ctx context.Context, userID string, characterID int64) (*domain.InventoryView, error)
	AddItem(ctx context.Context, userID string, characterID int64, itemName string, quantity int) (*domain.InventoryView, error)
	RemoveItem(ctx context.Context, userID string, characterID int64, itemName string, quantity int) (*domain.InventoryView, error)
}

// Granter applies a reward to an already locked character inside the caller's transaction.
// Items that do not fit are reported in RewardResult.Skipped instead of failing the grant.
type Granter interface {
	Grant(ctx context.Context, tx repository.CharacterTx, c *domain.Character, reward domain.Reward) (*domain.RewardResult, error)
}

// Service is the full interface that composes all sub-interfaces
type Service interface {
	ManagementService
	ProgressionService
	InventoryService
	Granter
}
