package pagecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yatube-lab/backend/pkg/xredis"
)

type redisCache struct {
	client xredis.Client
	prefix string
}

// NewRedisCache stores pages in redis under keys cache:<prefix>:<key>. Expiry
// is delegated to redis.
func NewRedisCache(client xredis.Client, prefix string) *redisCache {
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) key(key string) string {
	return fmt.Sprintf("cache:%s:%s", c.prefix, key)
}

func (c *redisCache) Get(ctx context.Context, key string, v any) (bool, error) {
	if err := c.client.GetObj(ctx, c.key(key), v); err != nil {
		if errors.Is(err, xredis.ErrNil) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (c *redisCache) Put(ctx context.Context, key string, v any, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}

	return c.client.SetObj(ctx, c.key(key), v, ttl)
}

func (c *redisCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, c.key("*"))
	if err != nil {
		return err
	}

	return c.client.Del(ctx, keys...)
}
