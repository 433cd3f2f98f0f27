package pagecache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/puzpuzpuz/xsync"
)

type memoryEntry struct {
	data      []byte
	expiredAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiredAt.IsZero() && !now.Before(e.expiredAt)
}

type memoryCache struct {
	entries *xsync.MapOf[string, memoryEntry]
	now     Clock
}

// NewMemoryCache returns a process local cache. A nil clock uses time.Now.
func NewMemoryCache(clock Clock) *memoryCache {
	if clock == nil {
		clock = time.Now
	}

	return &memoryCache{
		entries: xsync.NewMapOf[memoryEntry](),
		now:     clock,
	}
}

func (c *memoryCache) Get(_ context.Context, key string, v any) (bool, error) {
	entry, ok := c.entries.Load(key)
	if !ok {
		return false, nil
	}

	if entry.expired(c.now()) {
		c.entries.Delete(key)
		return false, nil
	}

	if err := json.Unmarshal(entry.data, v); err != nil {
		return false, err
	}

	return true, nil
}

func (c *memoryCache) Put(_ context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	entry := memoryEntry{data: b}
	if ttl > 0 {
		entry.expiredAt = c.now().Add(ttl)
	}

	c.entries.Store(key, entry)
	return nil
}

func (c *memoryCache) InvalidateAll(context.Context) error {
	c.entries.Range(func(key string, _ memoryEntry) bool {
		c.entries.Delete(key)
		return true
	})

	return nil
}
