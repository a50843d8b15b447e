package quest

import (
	"context"
	"time"

	"github.com/osse101/ChoreQuest_Go/internal/character"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// Service defines quest browsing, administration and the per-character quest lifecycle
type Service interface {
	ListActive(ctx context.Context) ([]domain.Quest, error)
	Get(ctx context.Context, questID int) (*domain.Quest, error)
	Create(ctx context.Context, input QuestInput) (*domain.Quest, error)

	ListForCharacter(ctx context.Context, userID string, characterID int64) ([]domain.CharacterQuest, error)
	Accept(ctx context.Context, userID string, characterID int64, questID int) (*domain.CharacterQuest, error)
	UpdateProgress(ctx context.Context, userID string, characterID int64, questID int, progress int) (*domain.CharacterQuest, error)
	Complete(ctx context.Context, userID string, characterID int64, questID int) (*domain.QuestCompletion, error)
}

// CharacterService is the part of the character service quests depend on
type CharacterService interface {
	Get(ctx context.Context, userID string, characterID int64) (*domain.Character, error)
	character.Granter
}

// LootTables rolls named loot tables
type LootTables interface {
	Has(name string) bool
	Roll(ctx context.Context, name string, level int) ([]domain.ItemGrant, error)
}

// QuestInput is an admin-defined quest
type QuestInput struct {
	Name             string
	Description      string
	DueDate          *time.Time
	IsActive         bool
	ExperiencePoints int
	Gold             int
	LootTable        string
	ItemLoot         []ItemLootInput
}

// ItemLootInput is an item a quest drops with the given probability
type ItemLootInput struct {
	ItemName    string
	Quantity    int
	Probability float64
}
