package domain

import (
	"context"
	"errors"

	"github.com/yatube-lab/backend/internal/common"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/pagecache"
	"github.com/yatube-lab/backend/pkg/paginator"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FeedDomain interface {
	GetIndex(context.Context, *model.GetIndexRequest) (*model.GetIndexResponse, error)
	GetGroupPosts(context.Context, *model.GetGroupPostsRequest) (*model.GetGroupPostsResponse, error)
	GetProfile(context.Context, *model.GetProfileRequest) (*model.GetProfileResponse, error)
	GetFollowIndex(context.Context, *model.GetFollowIndexRequest) (*model.GetFollowIndexResponse, error)
	InvalidateCache(context.Context, *model.InvalidateCacheRequest) (*model.InvalidateCacheResponse, error)
}

type feedDomain struct {
	postRepo      repository.PostRepository
	groupRepo     repository.GroupRepository
	userRepo      repository.UserRepository
	followRepo    repository.FollowRepository
	pageCache     pagecache.Cache
	adminVerifier *common.AdminVerifier
}

func NewFeedDomain(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	pageCache pagecache.Cache,
) *feedDomain {
	return &feedDomain{
		postRepo:      postRepo,
		groupRepo:     groupRepo,
		userRepo:      userRepo,
		followRepo:    followRepo,
		pageCache:     pageCache,
		adminVerifier: common.NewAdminVerifier(userRepo),
	}
}

// GetIndex returns a page of all posts. The page is served from the page cache
// until its ttl elapses, new posts are not visible before that. Pages are
// cached under their clamped number, so out of range requests share the entry
// of the last page.
func (d *feedDomain) GetIndex(
	ctx context.Context, req *model.GetIndexRequest,
) (*model.GetIndexResponse, error) {
	pages, err := newPostPaginator(ctx, d.postRepo, repository.PostFilter{})
	if err != nil {
		return nil, err
	}

	number := pages.Clamp(paginator.ParsePageNumber(req.Page))
	key := common.IndexPageCacheKey(number)

	var cached model.GetIndexResponse
	ok, err := d.pageCache.Get(ctx, key, &cached)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get index page from cache: %v", err)
	}

	if ok {
		common.PromCounters[common.FeedCacheLookupTotal].WithLabelValues("hit").Inc()
		return &cached, nil
	}
	common.PromCounters[common.FeedCacheLookupTotal].WithLabelValues("miss").Inc()

	page, err := loadPostPage(ctx, d.postRepo, repository.PostFilter{}, pages.Page(number))
	if err != nil {
		return nil, err
	}

	resp := &model.GetIndexResponse{Page: page}
	ttl := xcontext.Configs(ctx).Feed.IndexTTL
	if err := d.pageCache.Put(ctx, key, resp, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot put index page to cache: %v", err)
	}

	return resp, nil
}

func (d *feedDomain) GetGroupPosts(
	ctx context.Context, req *model.GetGroupPostsRequest,
) (*model.GetGroupPostsResponse, error) {
	if req.Slug == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty group slug")
	}

	group, err := d.groupRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	page, err := getPostPage(ctx, d.postRepo, repository.PostFilter{GroupID: group.ID}, req.Page)
	if err != nil {
		return nil, err
	}

	return &model.GetGroupPostsResponse{
		Group: model.ConvertGroup(group),
		Page:  page,
	}, nil
}

func (d *feedDomain) GetProfile(
	ctx context.Context, req *model.GetProfileRequest,
) (*model.GetProfileResponse, error) {
	author, err := getUserByUsername(ctx, d.userRepo, req.Username)
	if err != nil {
		return nil, err
	}

	page, err := getPostPage(ctx, d.postRepo, repository.PostFilter{AuthorID: author.ID}, req.Page)
	if err != nil {
		return nil, err
	}

	following := false
	if requestUserID := xcontext.RequestUserID(ctx); requestUserID != "" {
		following, err = d.followRepo.Exists(ctx, requestUserID, author.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check follow status: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.GetProfileResponse{
		Author:    model.ConvertUser(author),
		Page:      page,
		Following: following,
	}, nil
}

func (d *feedDomain) GetFollowIndex(
	ctx context.Context, req *model.GetFollowIndexRequest,
) (*model.GetFollowIndexResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	page, err := getPostPage(ctx, d.postRepo, repository.PostFilter{FollowedBy: userID}, req.Page)
	if err != nil {
		return nil, err
	}

	return &model.GetFollowIndexResponse{Page: page}, nil
}

func (d *feedDomain) InvalidateCache(
	ctx context.Context, req *model.InvalidateCacheRequest,
) (*model.InvalidateCacheResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		return nil, err
	}

	if err := d.pageCache.InvalidateAll(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot invalidate page cache: %v", err)
		return nil, errorx.Unknown
	}

	return &model.InvalidateCacheResponse{}, nil
}
