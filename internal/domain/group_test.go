package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/testutil"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

func newTestGroupDomain() *groupDomain {
	return NewGroupDomain(
		repository.NewGroupRepository(),
		repository.NewPostRepository(),
		repository.NewUserRepository(),
	)
}

func Test_groupDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestGroupDomain()

	req := &model.CreateGroupRequest{Slug: "dogs", Title: "Dogs", Description: "Only dogs"}

	_, err := domain.Create(xcontext.WithRequestUserID(ctx, testutil.User1.ID), req)
	require.ErrorIs(t, err, errorx.New(errorx.PermissionDenied, ""))

	adminCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	resp, err := domain.Create(adminCtx, req)
	require.NoError(t, err)
	require.Equal(t, "dogs", resp.Group.Slug)
	require.NotEmpty(t, resp.Group.ID)

	_, err = domain.Create(adminCtx, req)
	require.ErrorIs(t, err, errorx.New(errorx.AlreadyExists, ""))

	_, err = domain.Create(adminCtx, &model.CreateGroupRequest{Slug: "Not A Slug", Title: "x", Description: "x"})
	requireFieldError(t, err, "slug")

	list, err := domain.GetList(ctx, &model.GetGroupsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Groups, 3)
}

func Test_groupDomain_Get(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestGroupDomain()

	resp, err := domain.Get(ctx, &model.GetGroupRequest{Slug: testutil.Group1.Slug})
	require.NoError(t, err)
	require.Equal(t, testutil.Group1.Title, resp.Group.Title)

	_, err = domain.Get(ctx, &model.GetGroupRequest{Slug: "unknown"})
	require.ErrorIs(t, err, errorx.New(errorx.NotFound, ""))
}

func Test_groupDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestGroupDomain()
	req := &model.DeleteGroupRequest{Slug: testutil.Group2.Slug}

	_, err := domain.Delete(ctx, req)
	require.ErrorIs(t, err, errorx.New(errorx.Unauthenticated, ""))

	adminCtx := xcontext.WithRequestUserID(ctx, testutil.User3.ID)
	_, err = domain.Delete(adminCtx, req)
	require.NoError(t, err)

	// The post of the group survives without a group.
	post, err := repository.NewPostRepository().GetByID(ctx, testutil.Post1.ID)
	require.NoError(t, err)
	require.False(t, post.GroupID.Valid)

	_, err = domain.Get(ctx, &model.GetGroupRequest{Slug: testutil.Group2.Slug})
	require.ErrorIs(t, err, errorx.New(errorx.NotFound, ""))

	// The slug can be reused after a delete.
	_, err = domain.Create(adminCtx, &model.CreateGroupRequest{
		Slug: testutil.Group2.Slug, Title: "Cats again", Description: "Still cats",
	})
	require.NoError(t, err)
}

// cancelAfterDeleteGroupRepository cancels the request once the group row is
// deleted, so the transaction cannot be committed.
type cancelAfterDeleteGroupRepository struct {
	repository.GroupRepository
	cancel context.CancelFunc
}

func (r *cancelAfterDeleteGroupRepository) Delete(ctx context.Context, id string) error {
	if err := r.GroupRepository.Delete(ctx, id); err != nil {
		return err
	}

	r.cancel()
	return nil
}

func Test_groupDomain_Delete_CommitFailed(t *testing.T) {
	baseCtx := testutil.MockContext()
	testutil.CreateFixtureDb(baseCtx)

	ctx, cancel := context.WithCancel(xcontext.WithRequestUserID(baseCtx, testutil.User3.ID))
	defer cancel()

	domain := NewGroupDomain(
		&cancelAfterDeleteGroupRepository{GroupRepository: repository.NewGroupRepository(), cancel: cancel},
		repository.NewPostRepository(),
		repository.NewUserRepository(),
	)

	_, err := domain.Delete(ctx, &model.DeleteGroupRequest{Slug: testutil.Group2.Slug})
	require.Equal(t, errorx.Unknown, err)

	// The group and the group of its post are kept.
	_, err = repository.NewGroupRepository().GetBySlug(baseCtx, testutil.Group2.Slug)
	require.NoError(t, err)

	post, err := repository.NewPostRepository().GetByID(baseCtx, testutil.Post1.ID)
	require.NoError(t, err)
	require.True(t, post.GroupID.Valid)
}
