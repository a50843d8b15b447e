package quest

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/ChoreQuest_Go/internal/character"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/metrics"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
	"github.com/osse101/ChoreQuest_Go/internal/utils"
)

type service struct {
	repo       repository.Quest
	characters CharacterService
	loot       LootTables
	roll       func() float64
	now        func() time.Time
}

// Option customizes the quest service
type Option func(*service)

// WithRandom sets the roll used for per-quest item loot
func WithRandom(roll func() float64) Option {
	return func(s *service) { s.roll = roll }
}

// WithClock sets the time source used for due dates and timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new quest service
func NewService(repo repository.Quest, characters CharacterService, loot LootTables, opts ...Option) Service {
	s := &service{
		repo:       repo,
		characters: characters,
		loot:       loot,
		roll:       utils.RandomFloat,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) withTx(ctx context.Context, operation func(tx repository.QuestTx) error) error {
	log := logger.FromContext(ctx)
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := operation(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *service) ListActive(ctx context.Context) ([]domain.Quest, error) {
	return s.repo.GetActiveQuests(ctx)
}

func (s *service) Get(ctx context.Context, questID int) (*domain.Quest, error) {
	return s.repo.GetQuest(ctx, questID)
}

// Create validates and stores a quest definition
func (s *service) Create(ctx context.Context, input QuestInput) (*domain.Quest, error) {
	q, err := s.buildQuest(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateQuest(ctx, q); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestCreated, "quest_id", q.ID, "name", q.Name)
	return q, nil
}

func (s *service) buildQuest(input QuestInput) (*domain.Quest, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || utf8.RuneCountInString(name) > QuestNameMaxLength {
		return nil, fmt.Errorf("%w: quest name must be 1-%d characters", domain.ErrInvalidInput, QuestNameMaxLength)
	}
	if input.ExperiencePoints < 0 || input.Gold < 0 {
		return nil, fmt.Errorf("%w: experience and gold must not be negative", domain.ErrInvalidInput)
	}
	if input.LootTable != "" && !s.loot.Has(input.LootTable) {
		return nil, fmt.Errorf("%w: %s", domain.ErrLootTableNotFound, input.LootTable)
	}

	q := &domain.Quest{
		Name:             name,
		Description:      input.Description,
		DueDate:          input.DueDate,
		IsActive:         input.IsActive,
		ExperiencePoints: input.ExperiencePoints,
		Gold:             input.Gold,
		LootTable:        input.LootTable,
		ItemLoot:         make([]domain.QuestItemLoot, 0, len(input.ItemLoot)),
	}
	for _, l := range input.ItemLoot {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: loot %q quantity must be at least 1", domain.ErrInvalidInput, l.ItemName)
		}
		if l.Probability < 0 || l.Probability > 1 {
			return nil, fmt.Errorf("%w: loot %q probability must be between 0 and 1", domain.ErrInvalidInput, l.ItemName)
		}
		q.ItemLoot = append(q.ItemLoot, domain.QuestItemLoot{
			ItemName:    l.ItemName,
			Quantity:    l.Quantity,
			Probability: l.Probability,
		})
	}
	return q, nil
}

// ListForCharacter returns the character's quest rows. Other users' characters are not found.
func (s *service) ListForCharacter(ctx context.Context, userID string, characterID int64) ([]domain.CharacterQuest, error) {
	if _, err := s.characters.Get(ctx, userID, characterID); err != nil {
		return nil, err
	}
	return s.repo.GetCharacterQuests(ctx, characterID)
}

// Accept starts an active, not overdue quest for the character
func (s *service) Accept(ctx context.Context, userID string, characterID int64, questID int) (*domain.CharacterQuest, error) {
	var out *domain.CharacterQuest

	err := s.withTx(ctx, func(tx repository.QuestTx) error {
		if _, err := character.LockOwned(ctx, tx, userID, characterID); err != nil {
			return err
		}

		q, err := s.repo.GetQuest(ctx, questID)
		if err != nil {
			return err
		}
		if !q.IsActive {
			return domain.ErrQuestInactive
		}
		now := s.now()
		if q.IsOverdue(now) {
			return domain.ErrQuestOverdue
		}

		cq, err := tx.GetCharacterQuestForUpdate(ctx, characterID, questID)
		if err != nil {
			return err
		}
		if cq != nil && cq.Status != domain.QuestStatusOpen {
			return domain.ErrQuestAlreadyAccepted
		}

		out = &domain.CharacterQuest{
			CharacterID: characterID,
			QuestID:     questID,
			Status:      domain.QuestStatusAccepted,
			Progress:    domain.QuestProgressMin,
			AcceptedAt:  &now,
			QuestName:   q.Name,
		}
		return tx.UpsertCharacterQuest(ctx, out)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestAccepted, "character_id", characterID, "quest_id", questID)
	return out, nil
}

// UpdateProgress sets progress on an accepted quest
func (s *service) UpdateProgress(ctx context.Context, userID string, characterID int64, questID int, progress int) (*domain.CharacterQuest, error) {
	if progress < domain.QuestProgressMin || progress > domain.QuestProgressMax {
		return nil, domain.ErrInvalidProgress
	}

	var out *domain.CharacterQuest
	err := s.withTx(ctx, func(tx repository.QuestTx) error {
		cq, err := s.lockAccepted(ctx, tx, userID, characterID, questID)
		if err != nil {
			return err
		}
		cq.Progress = progress
		if err := tx.UpsertCharacterQuest(ctx, cq); err != nil {
			return err
		}
		out = cq
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgQuestProgress, "character_id", characterID, "quest_id", questID, "progress", progress)
	return out, nil
}

// Complete finishes an accepted quest and grants its rewards in the same transaction.
// Loot that does not fit in the inventory is reported as skipped.
func (s *service) Complete(ctx context.Context, userID string, characterID int64, questID int) (*domain.QuestCompletion, error) {
	var completion *domain.QuestCompletion

	err := s.withTx(ctx, func(tx repository.QuestTx) error {
		c, err := character.LockOwned(ctx, tx, userID, characterID)
		if err != nil {
			return err
		}

		cq, err := tx.GetCharacterQuestForUpdate(ctx, characterID, questID)
		if err != nil {
			return err
		}
		if cq == nil || cq.Status != domain.QuestStatusAccepted {
			return domain.ErrQuestNotAccepted
		}

		q, err := s.repo.GetQuest(ctx, questID)
		if err != nil {
			return err
		}

		items, err := s.rollLoot(ctx, q, c.Level)
		if err != nil {
			return err
		}

		reward, err := s.characters.Grant(ctx, tx, c, domain.Reward{
			Experience: q.ExperiencePoints,
			Gold:       q.Gold,
			Items:      items,
		})
		if err != nil {
			return err
		}

		now := s.now()
		cq.Status = domain.QuestStatusCompleted
		cq.Progress = domain.QuestProgressMax
		cq.CompletedAt = &now
		cq.QuestName = q.Name
		if err := tx.UpsertCharacterQuest(ctx, cq); err != nil {
			return err
		}

		completion = &domain.QuestCompletion{CharacterQuest: *cq, Reward: *reward}
		return nil
	})
	if err != nil {
		return nil, err
	}

	recordCompletion(completion)
	logger.FromContext(ctx).Info(LogMsgQuestCompleted,
		"character_id", characterID,
		"quest_id", questID,
		"granted", len(completion.Reward.Granted),
		"skipped", len(completion.Reward.Skipped))
	return completion, nil
}

func (s *service) lockAccepted(ctx context.Context, tx repository.QuestTx, userID string, characterID int64, questID int) (*domain.CharacterQuest, error) {
	if _, err := character.LockOwned(ctx, tx, userID, characterID); err != nil {
		return nil, err
	}
	cq, err := tx.GetCharacterQuestForUpdate(ctx, characterID, questID)
	if err != nil {
		return nil, err
	}
	if cq == nil || cq.Status != domain.QuestStatusAccepted {
		return nil, domain.ErrQuestNotAccepted
	}
	return cq, nil
}

// rollLoot rolls each item loot row by its probability, then the quest's loot table
func (s *service) rollLoot(ctx context.Context, q *domain.Quest, level int) ([]domain.ItemGrant, error) {
	var items []domain.ItemGrant
	for _, l := range q.ItemLoot {
		if s.roll() <= l.Probability {
			items = append(items, domain.ItemGrant{ItemName: l.ItemName, Quantity: l.Quantity})
		}
	}

	if q.LootTable != "" {
		drops, err := s.loot.Roll(ctx, q.LootTable, level)
		if err != nil {
			return nil, err
		}
		items = append(items, drops...)
	}
	return items, nil
}

func recordCompletion(c *domain.QuestCompletion) {
	metrics.QuestsCompleted.Inc()
	character.RecordExperience(c.Reward.Experience, character.SourceQuest)
	if c.Reward.Gold > 0 {
		metrics.GoldAwarded.Add(float64(c.Reward.Gold))
	}
	for _, g := range c.Reward.Granted {
		metrics.LootDrops.WithLabelValues(g.ItemName).Add(float64(g.Quantity))
		metrics.ItemsAdded.WithLabelValues(g.ItemName).Add(float64(g.Quantity))
	}
	for _, g := range c.Reward.Skipped {
		metrics.LootSkipped.WithLabelValues(g.ItemName).Add(float64(g.Quantity))
	}
}
