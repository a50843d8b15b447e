package item

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/metrics"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

// Service is the read side of the item catalog plus the admin resync
type Service interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByName(ctx context.Context, name string) (*domain.Item, error)
	Sync(ctx context.Context) (*SyncResult, error)
	InvalidateCache()
	CacheStats() CacheStats
}

// CacheStats reports catalog cache usage
type CacheStats struct {
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
}

// ServiceConfig configures the catalog service
type ServiceConfig struct {
	ConfigPath string
	CacheSize  int
	CacheTTL   time.Duration
}

type service struct {
	repo       repository.Item
	loader     Loader
	configPath string
	capacity   int
	cache      *expirable.LRU[string, domain.Item]
	hits       atomic.Uint64
	misses     atomic.Uint64
}

// NewService creates a catalog service backed by an expirable LRU keyed by item name
func NewService(repo repository.Item, loader Loader, cfg ServiceConfig) Service {
	return &service{
		repo:       repo,
		loader:     loader,
		configPath: cfg.ConfigPath,
		capacity:   cfg.CacheSize,
		cache:      expirable.NewLRU[string, domain.Item](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

// List returns every catalog item ordered by name and warms the cache
func (s *service) List(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		s.cache.Add(it.Name, it)
	}
	return items, nil
}

// GetByName returns an item by exact name. Unknown names return domain.ErrItemNotFound.
func (s *service) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	if it, ok := s.cache.Get(name); ok {
		s.hits.Add(1)
		metrics.ItemCacheOperations.WithLabelValues(metrics.ResultHit).Inc()
		return &it, nil
	}

	s.misses.Add(1)
	metrics.ItemCacheOperations.WithLabelValues(metrics.ResultMiss).Inc()

	it, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Add(name, *it)
	return it, nil
}

// Sync reloads the items file, writes it to the database and drops cached items
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	config, err := s.loader.Load(s.configPath)
	if err != nil {
		return nil, err
	}
	if err := s.loader.Validate(config); err != nil {
		return nil, err
	}

	result, err := s.loader.SyncToDatabase(ctx, config, s.repo, s.configPath)
	if err != nil {
		return nil, err
	}

	if !result.Unchanged {
		s.InvalidateCache()
		logger.FromContext(ctx).Info(LogMsgCacheInvalidated)
	}
	return result, nil
}

// InvalidateCache empties the cache
func (s *service) InvalidateCache() {
	s.cache.Purge()
}

// CacheStats returns current cache statistics
func (s *service) CacheStats() CacheStats {
	return CacheStats{
		Size:     s.cache.Len(),
		Capacity: s.capacity,
		Hits:     s.hits.Load(),
		Misses:   s.misses.Load(),
	}
}
