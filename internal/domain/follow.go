package domain

import (
	"context"

	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

type FollowDomain interface {
	Follow(context.Context, *model.FollowRequest) (*model.FollowResponse, error)
	Unfollow(context.Context, *model.UnfollowRequest) (*model.UnfollowResponse, error)
	GetFollowStatus(context.Context, *model.GetFollowStatusRequest) (*model.GetFollowStatusResponse, error)
}

type followDomain struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowDomain(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *followDomain {
	return &followDomain{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow is idempotent. Following yourself succeeds without creating an edge.
func (d *followDomain) Follow(
	ctx context.Context, req *model.FollowRequest,
) (*model.FollowResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	author, err := getUserByUsername(ctx, d.userRepo, req.Username)
	if err != nil {
		return nil, err
	}

	if author.ID == userID {
		return &model.FollowResponse{Following: false}, nil
	}

	if err := d.followRepo.Create(ctx, userID, author.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowResponse{Following: true}, nil
}

// Unfollow is idempotent, unfollowing an author who is not followed succeeds.
func (d *followDomain) Unfollow(
	ctx context.Context, req *model.UnfollowRequest,
) (*model.UnfollowResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	author, err := getUserByUsername(ctx, d.userRepo, req.Username)
	if err != nil {
		return nil, err
	}

	if err := d.followRepo.Delete(ctx, userID, author.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowResponse{Following: false}, nil
}

func (d *followDomain) GetFollowStatus(
	ctx context.Context, req *model.GetFollowStatusRequest,
) (*model.GetFollowStatusResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	author, err := getUserByUsername(ctx, d.userRepo, req.Username)
	if err != nil {
		return nil, err
	}

	following, err := d.followRepo.Exists(ctx, userID, author.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check follow status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetFollowStatusResponse{Following: following}, nil
}
