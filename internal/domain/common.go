package domain

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/paginator"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// getPostPage counts the posts matching filter and loads the requested page.
// Both queries run fresh, so a post created between two calls may shift the
// pages.
func getPostPage(
	ctx context.Context,
	postRepo repository.PostRepository,
	filter repository.PostFilter,
	rawPage string,
) (model.Page, error) {
	pages, err := newPostPaginator(ctx, postRepo, filter)
	if err != nil {
		return model.Page{}, err
	}

	return loadPostPage(ctx, postRepo, filter, pages.Page(paginator.ParsePageNumber(rawPage)))
}

func newPostPaginator(
	ctx context.Context, postRepo repository.PostRepository, filter repository.PostFilter,
) (paginator.Paginator, error) {
	count, err := postRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return paginator.Paginator{}, errorx.Unknown
	}

	return paginator.New(count, xcontext.Configs(ctx).Feed.PageSize), nil
}

func loadPostPage(
	ctx context.Context,
	postRepo repository.PostRepository,
	filter repository.PostFilter,
	page paginator.Page,
) (model.Page, error) {
	posts, err := postRepo.GetList(ctx, filter, page.Offset, page.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of posts: %v", err)
		return model.Page{}, errorx.Unknown
	}

	return model.ConvertPage(page, posts), nil
}

func getUserByUsername(
	ctx context.Context, userRepo repository.UserRepository, username string,
) (*entity.User, error) {
	if username == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username")
	}

	user, err := userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}

// getPostOfAuthor returns the post only if it was written by username.
func getPostOfAuthor(
	ctx context.Context, postRepo repository.PostRepository, username string, postID int64,
) (*entity.Post, error) {
	post, err := postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.Author.Username != username {
		return nil, errorx.New(errorx.NotFound, "Not found post")
	}

	return post, nil
}

func postPath(username string, postID int64) string {
	query := url.Values{}
	query.Set("username", username)
	query.Set("post_id", fmt.Sprint(postID))
	return "/getPost?" + query.Encode()
}

func requireUser(ctx context.Context) (string, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return "", errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	return userID, nil
}
