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

// QuestRepository implements repository.Quest for PostgreSQL
type QuestRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *pgxpool.Pool) repository.Quest {
	return &QuestRepository{
		db: db,
		q:  generated.New(db),
	}
}

// GetActiveQuests returns active quests ordered by due date, undated last
func (r *QuestRepository) GetActiveQuests(ctx context.Context) ([]domain.Quest, error) {
	rows, err := r.q.ListActiveQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuests, err)
	}

	quests := make([]domain.Quest, len(rows))
	for i, row := range rows {
		quests[i] = mapQuestRow(row)
	}
	return quests, nil
}

// GetQuest retrieves a quest with its item loot
func (r *QuestRepository) GetQuest(ctx context.Context, questID int) (*domain.Quest, error) {
	row, err := r.q.GetQuest(ctx, int32(questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuest, err)
	}
	quest := mapQuestRow(row)

	loot, err := r.q.ListQuestItemLoot(ctx, row.QuestID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuestLoot, err)
	}
	for _, l := range loot {
		quest.ItemLoot = append(quest.ItemLoot, domain.QuestItemLoot{
			ItemID:      int(l.ItemID),
			ItemName:    l.Name,
			Quantity:    int(l.Quantity),
			Probability: l.Probability,
		})
	}
	return &quest, nil
}

// CreateQuest inserts a quest and its item loot in one transaction
func (r *QuestRepository) CreateQuest(ctx context.Context, q *domain.Quest) error {
	h, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, h.tx)

	row, err := h.q.CreateQuest(ctx, generated.CreateQuestParams{
		Name:             q.Name,
		Description:      q.Description,
		DueDate:          timeToTimestamptz(q.DueDate),
		IsActive:         q.IsActive,
		ExperiencePoints: int32(q.ExperiencePoints),
		Gold:             int32(q.Gold),
		LootTable:        strToText(q.LootTable),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrQuestAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateQuest, err)
	}
	q.ID = int(row.QuestID)
	q.CreatedAt = row.CreatedAt.Time
	q.UpdatedAt = row.UpdatedAt.Time

	for i, l := range q.ItemLoot {
		itemID, err := h.q.InsertQuestItemLoot(ctx, generated.InsertQuestItemLootParams{
			QuestID:     row.QuestID,
			Quantity:    int32(l.Quantity),
			Probability: l.Probability,
			ItemName:    l.ItemName,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: %s", domain.ErrItemNotFound, l.ItemName)
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToCreateQuest, err)
		}
		q.ItemLoot[i].ItemID = int(itemID)
	}

	return h.tx.Commit(ctx)
}

// GetCharacterQuests returns a character's quest rows with quest names
func (r *QuestRepository) GetCharacterQuests(ctx context.Context, characterID int64) ([]domain.CharacterQuest, error) {
	rows, err := r.q.ListCharacterQuests(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacterQuests, err)
	}

	out := make([]domain.CharacterQuest, len(rows))
	for i, row := range rows {
		out[i] = mapCharacterQuestRow(generated.CharacterQuest{
			CharacterID: row.CharacterID,
			QuestID:     row.QuestID,
			Status:      row.Status,
			Progress:    row.Progress,
			AcceptedAt:  row.AcceptedAt,
			CompletedAt: row.CompletedAt,
		})
		out[i].QuestName = row.Name
	}
	return out, nil
}

// BeginTx starts a transaction covering quest progress and character rewards
func (r *QuestRepository) BeginTx(ctx context.Context) (repository.QuestTx, error) {
	h, err := beginTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &questTx{characterTx: &characterTx{tx: h.tx, q: h.q}}, nil
}

// questTx implements repository.QuestTx
type questTx struct {
	*characterTx
}

func (t *questTx) GetCharacterQuestForUpdate(ctx context.Context, characterID int64, questID int) (*domain.CharacterQuest, error) {
	row, err := t.q.GetCharacterQuestForUpdate(ctx, generated.GetCharacterQuestForUpdateParams{
		CharacterID: characterID,
		QuestID:     int32(questID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacterQuests, err)
	}
	cq := mapCharacterQuestRow(row)
	return &cq, nil
}

func (t *questTx) UpsertCharacterQuest(ctx context.Context, cq *domain.CharacterQuest) error {
	err := t.q.UpsertCharacterQuest(ctx, generated.UpsertCharacterQuestParams{
		CharacterID: cq.CharacterID,
		QuestID:     int32(cq.QuestID),
		Status:      string(cq.Status),
		Progress:    int32(cq.Progress),
		AcceptedAt:  timeToTimestamptz(cq.AcceptedAt),
		CompletedAt: timeToTimestamptz(cq.CompletedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveCharacterQuest, err)
	}
	return nil
}

// Helper to map SQLC quest row to domain model
func mapQuestRow(row generated.Quest) domain.Quest {
	quest := domain.Quest{
		ID:               int(row.QuestID),
		Name:             row.Name,
		Description:      row.Description,
		DueDate:          ptrTime(row.DueDate),
		IsActive:         row.IsActive,
		ExperiencePoints: int(row.ExperiencePoints),
		Gold:             int(row.Gold),
		ItemLoot:         []domain.QuestItemLoot{},
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}

	if row.LootTable.Valid {
		quest.LootTable = row.LootTable.String
	}

	return quest
}

func mapCharacterQuestRow(row generated.CharacterQuest) domain.CharacterQuest {
	return domain.CharacterQuest{
		CharacterID: row.CharacterID,
		QuestID:     int(row.QuestID),
		Status:      domain.QuestStatus(row.Status),
		Progress:    int(row.Progress),
		AcceptedAt:  ptrTime(row.AcceptedAt),
		CompletedAt: ptrTime(row.CompletedAt),
	}
}
