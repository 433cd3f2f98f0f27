package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/testutil"
)

func Test_postRepository_GetList_Order(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	postRepo := NewPostRepository()

	sameTime := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	first, err := testutil.SamplePost(ctx, entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{CreatedAt: sameTime},
	})
	require.NoError(t, err)
	second, err := testutil.SamplePost(ctx, entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{CreatedAt: sameTime},
	})
	require.NoError(t, err)

	posts, err := postRepo.GetList(ctx, PostFilter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 4)
	require.Equal(t, second.ID, posts[0].ID)
	require.Equal(t, first.ID, posts[1].ID)
	require.Equal(t, testutil.Post2.ID, posts[2].ID)
	require.Equal(t, testutil.Post1.ID, posts[3].ID)

	require.Equal(t, testutil.User1.Username, posts[3].Author.Username)
	require.Equal(t, testutil.Group2.Slug, posts[3].Group.Slug)
}

func Test_postRepository_Filter(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	postRepo := NewPostRepository()
	followRepo := NewFollowRepository()

	count, err := postRepo.Count(ctx, PostFilter{GroupID: testutil.Group2.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = postRepo.Count(ctx, PostFilter{GroupID: testutil.Group1.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	posts, err := postRepo.GetList(ctx, PostFilter{AuthorID: testutil.User2.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, testutil.Post2.ID, posts[0].ID)

	count, err = postRepo.Count(ctx, PostFilter{FollowedBy: testutil.User3.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	require.NoError(t, followRepo.Create(ctx, testutil.User3.ID, testutil.User1.ID))
	posts, err = postRepo.GetList(ctx, PostFilter{FollowedBy: testutil.User3.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, testutil.Post1.ID, posts[0].ID)
}

func Test_postRepository_OffsetLimit(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	postRepo := NewPostRepository()

	for i := 0; i < 10; i++ {
		_, err := testutil.SamplePost(ctx, entity.Post{})
		require.NoError(t, err)
	}

	seen := map[int64]bool{}
	for offset := 0; offset < 12; offset += 5 {
		posts, err := postRepo.GetList(ctx, PostFilter{}, offset, 5)
		require.NoError(t, err)
		for _, p := range posts {
			require.False(t, seen[p.ID])
			seen[p.ID] = true
		}
	}
	require.Len(t, seen, 12)
}

func Test_postRepository_UpdateAndClearGroup(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	postRepo := NewPostRepository()

	post, err := postRepo.GetByID(ctx, testutil.Post2.ID)
	require.NoError(t, err)

	post.Text = "edited"
	post.GroupID = sql.NullString{Valid: true, String: testutil.Group2.ID}
	post.Image = sql.NullString{Valid: true, String: "https://cdn/images/posts/a.png"}
	require.NoError(t, postRepo.Update(ctx, post))

	post, err = postRepo.GetByID(ctx, testutil.Post2.ID)
	require.NoError(t, err)
	require.Equal(t, "edited", post.Text)
	require.Equal(t, testutil.Group2.ID, post.GroupID.String)
	require.Equal(t, "https://cdn/images/posts/a.png", post.Image.String)

	require.NoError(t, postRepo.ClearGroup(ctx, testutil.Group2.ID))

	count, err := postRepo.Count(ctx, PostFilter{GroupID: testutil.Group2.ID})
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	post, err = postRepo.GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.False(t, post.GroupID.Valid)
}
