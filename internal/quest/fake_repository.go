package quest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/ChoreQuest_Go/internal/character"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

type progressKey struct {
	characterID int64
	questID     int
}

// FakeRepository is an in-memory repository.Quest. Its transactions wrap a character
// FakeTx so quest rows and character rewards commit or roll back together.
type FakeRepository struct {
	Characters *character.FakeRepository
	// ItemIDs maps item names to IDs for quest item loot; unknown names fail CreateQuest
	ItemIDs map[string]int

	mu       sync.Mutex
	quests   map[int]domain.Quest
	progress map[progressKey]domain.CharacterQuest
	nextID   int
}

func NewFakeRepository(characters *character.FakeRepository, itemIDs map[string]int) *FakeRepository {
	return &FakeRepository{
		Characters: characters,
		ItemIDs:    itemIDs,
		quests:     make(map[int]domain.Quest),
		progress:   make(map[progressKey]domain.CharacterQuest),
	}
}

func (f *FakeRepository) GetActiveQuests(ctx context.Context) ([]domain.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []domain.Quest{}
	for _, q := range f.quests {
		if q.IsActive {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepository) GetQuest(ctx context.Context, questID int) (*domain.Quest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	q, ok := f.quests[questID]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	return &q, nil
}

func (f *FakeRepository) CreateQuest(ctx context.Context, quest *domain.Quest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, q := range f.quests {
		if strings.EqualFold(q.Name, quest.Name) {
			return domain.ErrQuestAlreadyExists
		}
	}
	for i, l := range quest.ItemLoot {
		id, ok := f.ItemIDs[l.ItemName]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, l.ItemName)
		}
		quest.ItemLoot[i].ItemID = id
	}

	f.nextID++
	quest.ID = f.nextID
	stored := *quest
	stored.ItemLoot = append([]domain.QuestItemLoot(nil), quest.ItemLoot...)
	f.quests[quest.ID] = stored
	return nil
}

func (f *FakeRepository) GetCharacterQuests(ctx context.Context, characterID int64) ([]domain.CharacterQuest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []domain.CharacterQuest{}
	for k, cq := range f.progress {
		if k.characterID == characterID {
			cq.QuestName = f.quests[k.questID].Name
			out = append(out, cq)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestID < out[j].QuestID })
	return out, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.QuestTx, error) {
	f.mu.Lock()
	progress := make(map[progressKey]domain.CharacterQuest, len(f.progress))
	for k, v := range f.progress {
		progress[k] = v
	}
	f.mu.Unlock()

	return &fakeTx{FakeTx: f.Characters.Begin(), repo: f, progress: progress}, nil
}

type fakeTx struct {
	*character.FakeTx
	repo     *FakeRepository
	progress map[progressKey]domain.CharacterQuest
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if err := t.FakeTx.Commit(ctx); err != nil {
		return err
	}
	t.repo.mu.Lock()
	t.repo.progress = t.progress
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeTx) GetCharacterQuestForUpdate(ctx context.Context, characterID int64, questID int) (*domain.CharacterQuest, error) {
	cq, ok := t.progress[progressKey{characterID, questID}]
	if !ok {
		return nil, nil
	}
	return &cq, nil
}

func (t *fakeTx) UpsertCharacterQuest(ctx context.Context, cq *domain.CharacterQuest) error {
	stored := *cq
	stored.QuestName = ""
	t.progress[progressKey{cq.CharacterID, cq.QuestID}] = stored
	return nil
}
