package character

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of repository.Character for tests.
// Transactions work on a copy of the state and publish it on Commit, so a rolled back
// operation leaves nothing behind.
type FakeRepository struct {
	mu    sync.Mutex
	state *fakeState
}

type fakeState struct {
	characters map[int64]domain.Character
	stacks     map[int64][]domain.InventoryStack
	nextCharID int64
	nextStack  int64
}

// NewFakeRepository returns an empty fake store
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		state: &fakeState{
			characters: make(map[int64]domain.Character),
			stacks:     make(map[int64][]domain.InventoryStack),
		},
	}
}

func (s *fakeState) clone() *fakeState {
	out := &fakeState{
		characters: make(map[int64]domain.Character, len(s.characters)),
		stacks:     make(map[int64][]domain.InventoryStack, len(s.stacks)),
		nextCharID: s.nextCharID,
		nextStack:  s.nextStack,
	}
	for id, c := range s.characters {
		out.characters[id] = c
	}
	for id, stacks := range s.stacks {
		out.stacks[id] = append([]domain.InventoryStack(nil), stacks...)
	}
	return out
}

// SeedStack inserts a stack directly, bypassing the ledger
func (f *FakeRepository) SeedStack(characterID int64, item domain.Item, quantity int) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.nextStack++
	f.state.stacks[characterID] = append(f.state.stacks[characterID], domain.InventoryStack{
		ID:          f.state.nextStack,
		CharacterID: characterID,
		Item:        item,
		Quantity:    quantity,
	})
	return f.state.nextStack
}

// Stacks returns the committed stacks of a character
func (f *FakeRepository) Stacks(characterID int64) []domain.InventoryStack {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.InventoryStack(nil), f.state.stacks[characterID]...)
}

func (f *FakeRepository) CreateCharacter(ctx context.Context, character *domain.Character) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.state.characters {
		if strings.EqualFold(c.Name, character.Name) {
			return domain.ErrCharacterNameTaken
		}
	}
	f.state.nextCharID++
	character.ID = f.state.nextCharID
	character.CreatedAt = time.Now()
	character.UpdatedAt = character.CreatedAt
	f.state.characters[character.ID] = *character
	return nil
}

func (f *FakeRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.getCharacter(characterID)
}

func (s *fakeState) getCharacter(characterID int64) (*domain.Character, error) {
	c, ok := s.characters[characterID]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

func (f *FakeRepository) ListCharactersByUser(ctx context.Context, userID string) ([]domain.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Character{}
	for _, c := range f.state.characters {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepository) DeleteCharacter(ctx context.Context, characterID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.state.characters[characterID]; !ok {
		return domain.ErrCharacterNotFound
	}
	delete(f.state.characters, characterID)
	delete(f.state.stacks, characterID)
	return nil
}

func (f *FakeRepository) SetActiveCharacter(ctx context.Context, userID string, characterID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.state.characters[characterID]; !ok {
		return domain.ErrCharacterNotFound
	}
	for id, c := range f.state.characters {
		if c.UserID == userID {
			c.IsActive = id == characterID
			f.state.characters[id] = c
		}
	}
	return nil
}

func (f *FakeRepository) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryStack, error) {
	return f.Stacks(characterID), nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	return f.Begin(), nil
}

// Begin opens a fake transaction over a snapshot of the current state
func (f *FakeRepository) Begin() *FakeTx {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &FakeTx{repo: f, state: f.state.clone()}
}

// FakeTx is the transaction returned by FakeRepository.BeginTx
type FakeTx struct {
	repo      *FakeRepository
	state     *fakeState
	closed    bool
	Committed bool
}

func (t *FakeTx) Commit(ctx context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.repo.mu.Lock()
	t.repo.state = t.state
	t.repo.mu.Unlock()
	t.closed = true
	t.Committed = true
	return nil
}

func (t *FakeTx) Rollback(ctx context.Context) error {
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true
	return nil
}

func (t *FakeTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	return t.state.getCharacter(characterID)
}

func (t *FakeTx) UpdateCharacter(ctx context.Context, character *domain.Character) error {
	if _, ok := t.state.characters[character.ID]; !ok {
		return domain.ErrCharacterNotFound
	}
	character.UpdatedAt = time.Now()
	t.state.characters[character.ID] = *character
	return nil
}

func (t *FakeTx) GetInventory(ctx context.Context, characterID int64) ([]domain.InventoryStack, error) {
	return append([]domain.InventoryStack(nil), t.state.stacks[characterID]...), nil
}

func (t *FakeTx) ApplyInventoryChanges(ctx context.Context, characterID int64, changes domain.InventoryChanges) error {
	stacks := t.state.stacks[characterID]

	deleted := make(map[int64]bool, len(changes.Deleted))
	for _, id := range changes.Deleted {
		deleted[id] = true
	}
	updated := make(map[int64]domain.InventoryStack, len(changes.Updated))
	for _, s := range changes.Updated {
		updated[s.ID] = s
	}

	kept := make([]domain.InventoryStack, 0, len(stacks)+len(changes.Created))
	for _, s := range stacks {
		if deleted[s.ID] {
			continue
		}
		if u, ok := updated[s.ID]; ok {
			s.Quantity = u.Quantity
			s.CurrentDurability = u.CurrentDurability
		}
		kept = append(kept, s)
	}
	for _, s := range changes.Created {
		t.state.nextStack++
		s.ID = t.state.nextStack
		s.CharacterID = characterID
		s.CreatedAt = time.Now()
		kept = append(kept, s)
	}
	t.state.stacks[characterID] = kept
	return nil
}

// FakeCatalog is an in-memory ItemCatalog
type FakeCatalog map[string]domain.Item

func (c FakeCatalog) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	item, ok := c[name]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}
