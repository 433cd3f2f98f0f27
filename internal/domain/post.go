package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yatube-lab/backend/internal/common"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/idutil"
	"github.com/yatube-lab/backend/pkg/storage"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PostDomain interface {
	Create(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	Get(context.Context, *model.GetPostRequest) (*model.GetPostResponse, error)
	Update(context.Context, *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
	Delete(context.Context, *model.DeletePostRequest) (*model.DeletePostResponse, error)
	AddComment(context.Context, *model.AddCommentRequest) (*model.AddCommentResponse, error)
}

type postDomain struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	storage     storage.Storage
}

func NewPostDomain(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	storage storage.Storage,
) *postDomain {
	return &postDomain{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

// preparePost validates the input and resolves its group and image. Nothing is
// written to the database.
func (d *postDomain) preparePost(
	ctx context.Context, input model.NewPostInput,
) (groupID sql.NullString, image sql.NullString, err error) {
	input.Text = common.TrimText(input.Text)
	if fields := common.Validate(input); fields != nil {
		return groupID, image, errorx.NewValidation(fields)
	}

	if input.GroupSlug != "" {
		group, err := d.groupRepo.GetBySlug(ctx, input.GroupSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return groupID, image, errorx.NewValidation(map[string]string{
					"group": "Select a valid choice. That choice is not one of the available choices.",
				})
			}

			xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
			return groupID, image, errorx.Unknown
		}

		groupID = sql.NullString{Valid: true, String: group.ID}
	}

	if input.Image != nil {
		url, err := common.ProcessImage(ctx, d.storage, input.Image)
		if err != nil {
			return groupID, image, err
		}

		image = sql.NullString{Valid: true, String: url}
	}

	return groupID, image, nil
}

func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	groupID, image, err := d.preparePost(ctx, req.Input())
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{ID: idutil.NewID()},
		Text:          common.TrimText(req.Text),
		AuthorID:      userID,
		GroupID:       groupID,
		Image:         image,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	created, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get created post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePostResponse{Post: model.ConvertPost(created)}, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	post, err := getPostOfAuthor(ctx, d.postRepo, req.Username, req.PostID)
	if err != nil {
		return nil, err
	}

	comments, err := d.commentRepo.GetListByPostID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	clientComments := []model.Comment{}
	for i := range comments {
		clientComments = append(clientComments, model.ConvertComment(&comments[i]))
	}

	return &model.GetPostResponse{
		Post:     model.ConvertPost(post),
		Author:   model.ConvertUser(&post.Author),
		Comments: clientComments,
	}, nil
}

// Update edits the text, group and image of a post. An empty group detaches
// the post from its group, a missing image keeps the current one. Users other
// than the author are sent back to the post.
func (d *postDomain) Update(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	post, err := getPostOfAuthor(ctx, d.postRepo, req.Username, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can edit the post").
			WithRedirect(postPath(req.Username, post.ID))
	}

	groupID, image, err := d.preparePost(ctx, req.Input())
	if err != nil {
		return nil, err
	}

	post.Text = common.TrimText(req.Text)
	post.GroupID = groupID
	if image.Valid {
		post.Image = image
	}
	post.UpdatedAt = time.Now()

	if err := d.postRepo.Update(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePostResponse{Post: model.ConvertPost(updated)}, nil
}

// Delete removes the post and its comments in one transaction.
func (d *postDomain) Delete(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	post, err := getPostOfAuthor(ctx, d.postRepo, req.Username, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete the post").
			WithRedirect(postPath(req.Username, post.ID))
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.commentRepo.DeleteByPostID(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comments of post: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.postRepo.Delete(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit post deletion: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePostResponse{}, nil
}

func (d *postDomain) AddComment(
	ctx context.Context, req *model.AddCommentRequest,
) (*model.AddCommentResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	post, err := getPostOfAuthor(ctx, d.postRepo, req.Username, req.PostID)
	if err != nil {
		return nil, err
	}

	input := model.CommentInput{Text: common.TrimText(req.Text)}
	if fields := common.Validate(input); fields != nil {
		return nil, errorx.NewValidation(fields)
	}

	author, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Not found requester")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Comment{
		SnowFlakeBase: entity.SnowFlakeBase{ID: idutil.NewID()},
		PostID:        post.ID,
		AuthorID:      userID,
		Text:          input.Text,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}
	comment.Author = *author

	return &model.AddCommentResponse{Comment: model.ConvertComment(comment)}, nil
}
