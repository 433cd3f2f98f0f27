package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/pagecache"
	"github.com/yatube-lab/backend/pkg/testutil"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestFeedDomain(cache pagecache.Cache) *feedDomain {
	if cache == nil {
		cache = pagecache.NewMemoryCache(time.Now)
	}

	return NewFeedDomain(
		repository.NewPostRepository(),
		repository.NewGroupRepository(),
		repository.NewUserRepository(),
		repository.NewFollowRepository(),
		cache,
	)
}

func postIDs(page model.Page) []int64 {
	ids := []int64{}
	for _, p := range page.Posts {
		ids = append(ids, p.ID)
	}

	return ids
}

func createSamplePosts(t *testing.T, ctx context.Context, n int, init entity.Post) []entity.Post {
	posts := []entity.Post{}
	for i := 0; i < n; i++ {
		post, err := testutil.SamplePost(ctx, init)
		require.NoError(t, err)
		posts = append(posts, post)
	}

	return posts
}

func Test_feedDomain_GetIndex(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestFeedDomain(nil)

	resp, err := domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)
	require.Equal(t, []int64{testutil.Post2.ID, testutil.Post1.ID}, postIDs(resp.Page))
	require.Equal(t, 1, resp.Page.Number)
	require.Equal(t, 1, resp.Page.NumPages)
	require.Equal(t, int64(2), resp.Page.Count)
	require.False(t, resp.Page.HasNext)
	require.False(t, resp.Page.HasPrevious)

	first := resp.Page.Posts[1]
	require.Equal(t, testutil.User1.Username, first.Author.Username)
	require.NotNil(t, first.Group)
	require.Equal(t, testutil.Group2.Slug, first.Group.Slug)
	require.Nil(t, resp.Page.Posts[0].Group)
}

func Test_feedDomain_GetIndex_Pagination(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	samples := createSamplePosts(t, ctx, 10, entity.Post{})
	domain := newTestFeedDomain(nil)

	resp, err := domain.GetIndex(ctx, &model.GetIndexRequest{Page: "1"})
	require.NoError(t, err)
	require.Len(t, resp.Page.Posts, 10)
	require.Equal(t, 2, resp.Page.NumPages)
	require.Equal(t, int64(12), resp.Page.Count)
	require.True(t, resp.Page.HasNext)
	require.Equal(t, samples[9].ID, resp.Page.Posts[0].ID)

	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{Page: "2"})
	require.NoError(t, err)
	require.Equal(t, []int64{testutil.Post2.ID, testutil.Post1.ID}, postIDs(resp.Page))
	require.True(t, resp.Page.HasPrevious)
	require.False(t, resp.Page.HasNext)

	// Out of range pages are clamped to the last page.
	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{Page: "3"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Page.Number)
	require.Len(t, resp.Page.Posts, 2)

	// Non numeric pages fall back to the first page.
	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{Page: "abc"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Page.Number)
	require.Len(t, resp.Page.Posts, 10)
}

func Test_feedDomain_GetIndex_Cache(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	clock := &fakeClock{now: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)}
	domain := newTestFeedDomain(pagecache.NewMemoryCache(clock.Now))

	resp, err := domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Page.Posts, 2)

	newPost, err := testutil.SamplePost(ctx, entity.Post{})
	require.NoError(t, err)

	// The cached page hides the new post until the ttl elapses.
	clock.Advance(19 * time.Second)
	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Page.Posts, 2)

	clock.Advance(2 * time.Second)
	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Page.Posts, 3)
	require.Equal(t, newPost.ID, resp.Page.Posts[0].ID)
}

type keyRecordingCache struct {
	pagecache.Cache
	putKeys []string
}

func (c *keyRecordingCache) Put(ctx context.Context, key string, v any, ttl time.Duration) error {
	c.putKeys = append(c.putKeys, key)
	return c.Cache.Put(ctx, key, v, ttl)
}

func Test_feedDomain_GetIndex_CacheKeyClamped(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	createSamplePosts(t, ctx, 10, entity.Post{})

	cache := &keyRecordingCache{Cache: pagecache.NewMemoryCache(time.Now)}
	domain := newTestFeedDomain(cache)

	resp, err := domain.GetIndex(ctx, &model.GetIndexRequest{Page: "3"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Page.Number)

	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{Page: "999"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Page.Number)
	require.Equal(t, []int64{testutil.Post2.ID, testutil.Post1.ID}, postIDs(resp.Page))

	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{Page: "-5"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Page.Number)

	// page=999 is served from the entry written for page=3.
	require.Equal(t, []string{"index:2", "index:1"}, cache.putKeys)
}

func Test_feedDomain_GetIndex_CacheError(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	putCalled := false
	client := &testutil.MockRedisClient{
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			return errors.New("connection refused")
		},
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			putCalled = true
			require.Equal(t, "cache:feed:index:1", key)
			require.Equal(t, 20*time.Second, ttl)
			return errors.New("connection refused")
		},
	}

	domain := newTestFeedDomain(pagecache.NewRedisCache(client, "feed"))
	resp, err := domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Page.Posts, 2)
	require.True(t, putCalled)
}

func Test_feedDomain_GetGroupPosts(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestFeedDomain(nil)

	resp, err := domain.GetGroupPosts(ctx, &model.GetGroupPostsRequest{Slug: testutil.Group2.Slug})
	require.NoError(t, err)
	require.Equal(t, testutil.Group2.Title, resp.Group.Title)
	require.Equal(t, []int64{testutil.Post1.ID}, postIDs(resp.Page))

	resp, err = domain.GetGroupPosts(ctx, &model.GetGroupPostsRequest{Slug: testutil.Group1.Slug})
	require.NoError(t, err)
	require.Empty(t, resp.Page.Posts)
	require.Equal(t, 1, resp.Page.NumPages)

	_, err = domain.GetGroupPosts(ctx, &model.GetGroupPostsRequest{Slug: "unknown"})
	require.ErrorIs(t, err, errorx.New(errorx.NotFound, ""))
}

func Test_feedDomain_GetProfile(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestFeedDomain(nil)

	resp, err := domain.GetProfile(ctx, &model.GetProfileRequest{Username: testutil.User1.Username})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Username, resp.Author.Username)
	require.Equal(t, []int64{testutil.Post1.ID}, postIDs(resp.Page))
	require.False(t, resp.Following)

	ctx = xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	require.NoError(t, repository.NewFollowRepository().Create(ctx, testutil.User2.ID, testutil.User1.ID))

	resp, err = domain.GetProfile(ctx, &model.GetProfileRequest{Username: testutil.User1.Username})
	require.NoError(t, err)
	require.True(t, resp.Following)

	_, err = domain.GetProfile(ctx, &model.GetProfileRequest{Username: "nobody"})
	require.ErrorIs(t, err, errorx.New(errorx.NotFound, ""))
}

func Test_feedDomain_GetFollowIndex(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestFeedDomain(nil)
	followRepo := repository.NewFollowRepository()

	_, err := domain.GetFollowIndex(ctx, &model.GetFollowIndexRequest{})
	require.ErrorIs(t, err, errorx.New(errorx.Unauthenticated, ""))

	require.NoError(t, followRepo.Create(ctx, testutil.User2.ID, testutil.User1.ID))

	bobCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	resp, err := domain.GetFollowIndex(bobCtx, &model.GetFollowIndexRequest{})
	require.NoError(t, err)
	require.Equal(t, []int64{testutil.Post1.ID}, postIDs(resp.Page))

	carolCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	resp, err = domain.GetFollowIndex(carolCtx, &model.GetFollowIndexRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Page.Posts)
	require.Equal(t, int64(0), resp.Page.Count)
	require.Equal(t, 1, resp.Page.NumPages)
}

func Test_feedDomain_InvalidateCache(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestFeedDomain(nil)

	_, err := domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)

	_, err = testutil.SamplePost(ctx, entity.Post{})
	require.NoError(t, err)

	_, err = domain.InvalidateCache(ctx, &model.InvalidateCacheRequest{})
	require.ErrorIs(t, err, errorx.New(errorx.Unauthenticated, ""))

	bobCtx := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	_, err = domain.InvalidateCache(bobCtx, &model.InvalidateCacheRequest{})
	require.ErrorIs(t, err, errorx.New(errorx.PermissionDenied, ""))

	resp, err := domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Page.Posts, 2)

	carolCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = domain.InvalidateCache(carolCtx, &model.InvalidateCacheRequest{})
	require.NoError(t, err)

	resp, err = domain.GetIndex(ctx, &model.GetIndexRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Page.Posts, 3)
}
