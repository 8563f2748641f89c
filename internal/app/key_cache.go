package app

import (
	"sync"
	"time"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

type keyCacheEntry struct {
	user      *users.User
	expiresAt time.Time
}

// apiKeyCache memoizes API-key lookups so hot callers do not hit the user
// store on every request. Entries expire after the configured TTL and are
// invalidated on rotation and deletion.
type apiKeyCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]keyCacheEntry
}

func newAPIKeyCache(ttl time.Duration) *apiKeyCache {
	return &apiKeyCache{
		ttl:     ttl,
		entries: make(map[string]keyCacheEntry),
	}
}

func (c *apiKeyCache) Get(keyHash string) (*users.User, bool) {
	c.mu.RLock()
	entry, ok := c.entries[keyHash]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.Invalidate(keyHash)
		return nil, false
	}
	return entry.user, true
}

func (c *apiKeyCache) Put(keyHash string, user *users.User) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[keyHash] = keyCacheEntry{
		user:      user,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *apiKeyCache) Invalidate(keyHash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, keyHash)
}
