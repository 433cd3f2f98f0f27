package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yatube-lab/backend/internal/common"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/errorx"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GroupDomain interface {
	Create(context.Context, *model.CreateGroupRequest) (*model.CreateGroupResponse, error)
	Get(context.Context, *model.GetGroupRequest) (*model.GetGroupResponse, error)
	GetList(context.Context, *model.GetGroupsRequest) (*model.GetGroupsResponse, error)
	Delete(context.Context, *model.DeleteGroupRequest) (*model.DeleteGroupResponse, error)
}

type groupDomain struct {
	groupRepo     repository.GroupRepository
	postRepo      repository.PostRepository
	adminVerifier *common.AdminVerifier
}

func NewGroupDomain(
	groupRepo repository.GroupRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *groupDomain {
	return &groupDomain{
		groupRepo:     groupRepo,
		postRepo:      postRepo,
		adminVerifier: common.NewAdminVerifier(userRepo),
	}
}

func (d *groupDomain) Create(
	ctx context.Context, req *model.CreateGroupRequest,
) (*model.CreateGroupResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		return nil, err
	}

	input := req.Input()
	input.Title = common.TrimText(input.Title)
	input.Description = common.TrimText(input.Description)
	if fields := common.Validate(input); fields != nil {
		return nil, errorx.NewValidation(fields)
	}

	_, err := d.groupRepo.GetBySlug(ctx, input.Slug)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Group with this slug already exists")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	group := &entity.Group{
		Base:        entity.Base{ID: uuid.NewString()},
		Slug:        input.Slug,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := d.groupRepo.Create(ctx, group); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateGroupResponse{Group: model.ConvertGroup(group)}, nil
}

func (d *groupDomain) Get(
	ctx context.Context, req *model.GetGroupRequest,
) (*model.GetGroupResponse, error) {
	group, err := d.groupRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetGroupResponse{Group: model.ConvertGroup(group)}, nil
}

func (d *groupDomain) GetList(
	ctx context.Context, req *model.GetGroupsRequest,
) (*model.GetGroupsResponse, error) {
	groups, err := d.groupRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of groups: %v", err)
		return nil, errorx.Unknown
	}

	clientGroups := []model.Group{}
	for i := range groups {
		clientGroups = append(clientGroups, model.ConvertGroup(&groups[i]))
	}

	return &model.GetGroupsResponse{Groups: clientGroups}, nil
}

// Delete detaches the posts of the group and removes the group in one
// transaction. The posts are kept.
func (d *groupDomain) Delete(
	ctx context.Context, req *model.DeleteGroupRequest,
) (*model.DeleteGroupResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		return nil, err
	}

	group, err := d.groupRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.postRepo.ClearGroup(ctx, group.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot detach posts from group: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.groupRepo.Delete(ctx, group.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete group: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit group deletion: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteGroupResponse{}, nil
}
