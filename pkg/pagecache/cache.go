package pagecache

import (
	"context"
	"time"
)

// Cache memoizes rendered pages. Values are stored as their json encoding, a
// Get before the ttl elapses decodes the same bytes that Put stored, even if
// the data behind the page changed in the meantime.
type Cache interface {
	// Get decodes the value of key into v. It returns false if the key is
	// absent or expired.
	Get(ctx context.Context, key string, v any) (bool, error)

	// Put stores v under key for ttl. A non positive ttl never expires.
	Put(ctx context.Context, key string, v any, ttl time.Duration) error

	// InvalidateAll removes every key of the cache.
	InvalidateAll(ctx context.Context) error
}

type Clock func() time.Time
