package character

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/inventory"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/metrics"
	"github.com/osse101/ChoreQuest_Go/internal/progression"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

type service struct {
	repo    repository.Character
	catalog ItemCatalog
	curve   progression.Curve
}

// NewService creates a character service using the default progression curve
func NewService(repo repository.Character, catalog ItemCatalog) Service {
	return NewServiceWithCurve(repo, catalog, progression.DefaultCurve())
}

// NewServiceWithCurve creates a character service with a custom progression curve
func NewServiceWithCurve(repo repository.Character, catalog ItemCatalog, curve progression.Curve) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		curve:   curve,
	}
}

// LockOwned loads and locks the character inside tx. An empty userID skips the owner check.
func LockOwned(ctx context.Context, tx repository.CharacterTx, userID string, characterID int64) (*domain.Character, error) {
	c, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if userID != "" && c.UserID != userID {
		return nil, domain.ErrCharacterNotFound
	}
	return c, nil
}

// withTx runs operation in a transaction, committing on success
func (s *service) withTx(ctx context.Context, operation func(tx repository.CharacterTx) error) error {
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

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < domain.CharacterNameMinLength || n > domain.CharacterNameMaxLength {
		return "", fmt.Errorf("%w: character name must be %d-%d characters", domain.ErrInvalidInput,
			domain.CharacterNameMinLength, domain.CharacterNameMaxLength)
	}
	return name, nil
}

func (s *service) Create(ctx context.Context, userID, name string) (*domain.Character, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	c := domain.NewCharacter(userID, name)
	if err := s.repo.CreateCharacter(ctx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCharacterCreated, "character_id", c.ID, "user_id", userID, "name", c.Name)
	return c, nil
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Character, error) {
	return s.repo.ListCharactersByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID string, characterID int64) (*domain.Character, error) {
	c, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, domain.ErrCharacterNotFound
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, userID string, characterID int64) error {
	if _, err := s.Get(ctx, userID, characterID); err != nil {
		return err
	}
	if err := s.repo.DeleteCharacter(ctx, characterID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "character_id", characterID, "user_id", userID)
	return nil
}

func (s *service) Activate(ctx context.Context, userID string, characterID int64) (*domain.Character, error) {
	c, err := s.Get(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetActiveCharacter(ctx, userID, characterID); err != nil {
		return nil, err
	}
	c.IsActive = true
	logger.FromContext(ctx).Info(LogMsgCharacterActivated, "character_id", characterID, "user_id", userID)
	return c, nil
}

func (s *service) AddExperience(ctx context.Context, userID string, characterID int64, points int) (*domain.ExperienceResult, error) {
	if userID == "" {
		return nil, domain.ErrCharacterNotFound
	}
	return s.awardExperience(ctx, userID, characterID, points, SourcePlayer)
}

func (s *service) AwardExperience(ctx context.Context, characterID int64, points int) (*domain.ExperienceResult, error) {
	return s.awardExperience(ctx, "", characterID, points, SourceAdmin)
}

func (s *service) awardExperience(ctx context.Context, userID string, characterID int64, points int, source string) (*domain.ExperienceResult, error) {
	if points < 0 {
		return nil, domain.ErrInvalidExperience
	}

	var result domain.ExperienceResult
	err := s.withTx(ctx, func(tx repository.CharacterTx) error {
		c, err := LockOwned(ctx, tx, userID, characterID)
		if err != nil {
			return err
		}
		result, err = s.applyExperience(ctx, c, points)
		if err != nil {
			return err
		}
		return tx.UpdateCharacter(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	RecordExperience(&result, source)
	return &result, nil
}

// applyExperience runs the aggregate and logs the cap case
func (s *service) applyExperience(ctx context.Context, c *domain.Character, points int) (domain.ExperienceResult, error) {
	result, err := AddExperience(c, points, s.curve)
	if err != nil {
		return result, err
	}

	log := logger.FromContext(ctx)
	if LevelUpCapReached(c) {
		metrics.LevelUpCapReached.Inc()
		log.Warn(LogMsgLevelUpCapReached,
			"character_id", c.ID,
			"levels_gained", result.LevelsGained,
			"experience_points", c.ExperiencePoints,
			"threshold", c.ExperienceToNextLevel)
	}
	log.Info(LogMsgExperienceAwarded,
		"character_id", c.ID,
		"points", points,
		"level", c.Level,
		"levels_gained", result.LevelsGained)
	return result, nil
}

// RecordExperience updates progression metrics for a committed award
func RecordExperience(result *domain.ExperienceResult, source string) {
	if result == nil {
		return
	}
	metrics.ExperienceAwarded.WithLabelValues(source).Add(float64(result.Awarded))
	if result.LevelsGained > 0 {
		metrics.LevelUps.Add(float64(result.LevelsGained))
	}
}

func (s *service) GetInventory(ctx context.Context, userID string, characterID int64) (*domain.InventoryView, error) {
	c, err := s.Get(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	stacks, err := s.repo.GetInventory(ctx, characterID)
	if err != nil {
		return nil, err
	}
	view := inventory.ForCharacter(c, stacks).View()
	return &view, nil
}

func (s *service) AddItem(ctx context.Context, userID string, characterID int64, itemName string, quantity int) (*domain.InventoryView, error) {
	return s.mutateInventory(ctx, userID, characterID, itemName, quantity, func(l *inventory.Ledger, item domain.Item) error {
		return l.AddItem(item, quantity)
	}, func(item domain.Item) {
		metrics.ItemsAdded.WithLabelValues(item.Name).Add(float64(quantity))
		logger.FromContext(ctx).Info(LogMsgItemAdded, "character_id", characterID, "item", item.Name, "quantity", quantity)
	})
}

func (s *service) RemoveItem(ctx context.Context, userID string, characterID int64, itemName string, quantity int) (*domain.InventoryView, error) {
	return s.mutateInventory(ctx, userID, characterID, itemName, quantity, func(l *inventory.Ledger, item domain.Item) error {
		return l.RemoveItem(item, quantity)
	}, func(item domain.Item) {
		metrics.ItemsRemoved.WithLabelValues(item.Name).Add(float64(quantity))
		logger.FromContext(ctx).Info(LogMsgItemRemoved, "character_id", characterID, "item", item.Name, "quantity", quantity)
	})
}

// mutateInventory loads the locked character's stacks into a ledger, runs op, persists the
// resulting changeset and returns the view re-read inside the same transaction.
func (s *service) mutateInventory(
	ctx context.Context,
	userID string,
	characterID int64,
	itemName string,
	quantity int,
	op func(l *inventory.Ledger, item domain.Item) error,
	onCommit func(item domain.Item),
) (*domain.InventoryView, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	item, err := s.catalog.GetByName(ctx, itemName)
	if err != nil {
		return nil, err
	}

	var view domain.InventoryView
	err = s.withTx(ctx, func(tx repository.CharacterTx) error {
		c, err := LockOwned(ctx, tx, userID, characterID)
		if err != nil {
			return err
		}
		stacks, err := tx.GetInventory(ctx, characterID)
		if err != nil {
			return err
		}

		ledger := inventory.ForCharacter(c, stacks)
		if err := op(ledger, *item); err != nil {
			if errors.Is(err, domain.ErrInsufficientCapacity) {
				metrics.CapacityRejections.Inc()
				logger.FromContext(ctx).Info(LogMsgCapacityRejected, "character_id", characterID, "item", item.Name, "quantity", quantity)
			}
			return err
		}

		if err := tx.ApplyInventoryChanges(ctx, characterID, ledger.Changes()); err != nil {
			return err
		}
		stacks, err = tx.GetInventory(ctx, characterID)
		if err != nil {
			return err
		}
		view = inventory.ForCharacter(c, stacks).View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	onCommit(*item)
	return &view, nil
}

func (s *service) Grant(ctx context.Context, tx repository.CharacterTx, c *domain.Character, reward domain.Reward) (*domain.RewardResult, error) {
	log := logger.FromContext(ctx)
	result := &domain.RewardResult{
		Granted: []domain.ItemGrant{},
		Skipped: []domain.ItemGrant{},
	}

	if reward.Experience > 0 {
		xp, err := s.applyExperience(ctx, c, reward.Experience)
		if err != nil {
			return nil, err
		}
		result.Experience = &xp
	}
	if reward.Gold > 0 {
		c.Gold += reward.Gold
		result.Gold = reward.Gold
	}

	if len(reward.Items) > 0 {
		stacks, err := tx.GetInventory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		ledger := inventory.ForCharacter(c, stacks)

		for _, grant := range reward.Items {
			item, err := s.catalog.GetByName(ctx, grant.ItemName)
			if err != nil {
				return nil, fmt.Errorf("reward item %q: %w", grant.ItemName, err)
			}
			err = ledger.AddItem(*item, grant.Quantity)
			switch {
			case err == nil:
				result.Granted = append(result.Granted, grant)
			case errors.Is(err, domain.ErrInsufficientCapacity):
				metrics.CapacityRejections.Inc()
				log.Info(LogMsgGrantItemSkipped, "character_id", c.ID, "item", grant.ItemName, "quantity", grant.Quantity)
				result.Skipped = append(result.Skipped, grant)
			default:
				return nil, err
			}
		}

		if changes := ledger.Changes(); !changes.IsEmpty() {
			if err := tx.ApplyInventoryChanges(ctx, c.ID, changes); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.UpdateCharacter(ctx, c); err != nil {
		return nil, err
	}
	return result, nil
}
