package repository

import (
	"context"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// Quest defines the interface for quest persistence
type Quest interface {
	GetActiveQuests(ctx context.Context) ([]domain.Quest, error)
	GetQuest(ctx context.Context, questID int) (*domain.Quest, error)
	CreateQuest(ctx context.Context, quest *domain.Quest) error
	GetCharacterQuests(ctx context.Context, characterID int64) ([]domain.CharacterQuest, error)

	BeginTx(ctx context.Context) (QuestTx, error)
}

// QuestTx extends a character transaction with quest progress rows so that
// completion and its rewards commit together.
type QuestTx interface {
	CharacterTx
	// GetCharacterQuestForUpdate returns nil, nil when the character has no row for the quest
	GetCharacterQuestForUpdate(ctx context.Context, characterID int64, questID int) (*domain.CharacterQuest, error)
	UpsertCharacterQuest(ctx context.Context, cq *domain.CharacterQuest) error
}
