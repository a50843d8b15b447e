package item

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// FakeRepository is an in-memory repository.Item for tests
type FakeRepository struct {
	mu     sync.Mutex
	items  map[int]domain.Item
	nextID int
	meta   map[string]domain.SyncMetadata

	// GetByNameCalls counts GetItemByName lookups so tests can observe caching
	GetByNameCalls int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items: make(map[int]domain.Item),
		meta:  make(map[string]domain.SyncMetadata),
	}
}

func (f *FakeRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Item, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *FakeRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	it, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &it, nil
}

func (f *FakeRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.GetByNameCalls++
	for _, it := range f.items {
		if it.Name == name {
			return &it, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *FakeRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	stored := *item
	stored.ID = f.nextID
	f.items[stored.ID] = stored
	return stored.ID, nil
}

func (f *FakeRepository) UpdateItem(ctx context.Context, itemID int, item *domain.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	stored := *item
	stored.ID = itemID
	f.items[itemID] = stored
	return nil
}

func (f *FakeRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.meta[configName]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *FakeRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.meta[metadata.ConfigName] = *metadata
	return nil
}
