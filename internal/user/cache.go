package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string
	User     domain.User
	CachedAt time.Time
}

// userCache is an in-memory LRU of accounts keyed by user ID,
// with time-based expiration and version-based invalidation.
type userCache struct {
	lru *expirable.LRU[string, *cachedUserEntry]
}

func newUserCache(size int, ttl time.Duration) *userCache {
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached user. Entries from an older schema version are dropped.
func (c *userCache) Get(userID string) (*domain.User, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(userID)
		return nil, false
	}

	u := entry.User
	return &u, true
}

func (c *userCache) Set(user *domain.User) {
	c.lru.Add(user.ID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     *user,
		CachedAt: time.Now(),
	})
}

func (c *userCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

func (c *userCache) Len() int {
	return c.lru.Len()
}
