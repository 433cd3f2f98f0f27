package pagecache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/yatube-lab/backend/config"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"github.com/yatube-lab/backend/pkg/xredis"
)

type page struct {
	Number int      `json:"number"`
	Texts  []string `json:"texts"`
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newRedisCache(t *testing.T) (*redisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	ctx := xcontext.WithConfigs(context.Background(), config.Configs{
		Redis: config.RedisConfigs{Addr: mr.Addr()},
	})

	client, err := xredis.NewClient(ctx)
	require.NoError(t, err)
	return NewRedisCache(client, "feed"), mr
}

func testRoundTrip(t *testing.T, c Cache) {
	ctx := context.Background()
	want := page{Number: 1, Texts: []string{"Hello", "Привет"}}

	var got page
	ok, err := c.Get(ctx, "index:1", &got)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(ctx, "index:1", want, time.Minute))

	ok, err = c.Get(ctx, "index:1", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	require.NoError(t, c.Put(ctx, "index:2", page{Number: 2}, time.Minute))
	require.NoError(t, c.InvalidateAll(ctx))

	ok, err = c.Get(ctx, "index:1", &got)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = c.Get(ctx, "index:2", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	testRoundTrip(t, NewMemoryCache(nil))
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c, _ := newRedisCache(t)
	testRoundTrip(t, c)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(clock.Now)

	require.NoError(t, c.Put(ctx, "k", page{Number: 1}, 20*time.Second))

	clock.Advance(19 * time.Second)
	var got page
	ok, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, ok)

	clock.Advance(time.Second)
	ok, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(ctx, "k", page{Number: 3}, 20*time.Second))
	ok, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, got.Number)
}

func TestMemoryCache_NoTTL(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	c := NewMemoryCache(clock.Now)

	require.NoError(t, c.Put(ctx, "k", page{Number: 1}, 0))
	clock.Advance(24 * time.Hour)

	var got page
	ok, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t)

	require.NoError(t, c.Put(ctx, "k", page{Number: 1}, 20*time.Second))
	require.True(t, mr.Exists("cache:feed:k"))

	mr.FastForward(21 * time.Second)

	var got page
	ok, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCache_InvalidateAllKeepsOtherPrefixes(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t)
	require.NoError(t, mr.Set("cache:other:k", "1"))

	require.NoError(t, c.Put(ctx, "k", page{Number: 1}, time.Minute))
	require.NoError(t, c.InvalidateAll(ctx))

	require.False(t, mr.Exists("cache:feed:k"))
	require.True(t, mr.Exists("cache:other:k"))
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(nil)

	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Put(ctx, "k", page{Number: i}, time.Minute)
				var got page
				_, _ = c.Get(ctx, "k", &got)
			}
		}(i)
	}
	wg.Wait()

	var got page
	ok, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, ok)
}
