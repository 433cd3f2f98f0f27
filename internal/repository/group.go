package repository

import (
	"context"

	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

type GroupRepository interface {
	Create(ctx context.Context, data *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Group, error)
	GetList(ctx context.Context) ([]entity.Group, error)
	Delete(ctx context.Context, id string) error
}

type groupRepository struct{}

func NewGroupRepository() *groupRepository {
	return &groupRepository{}
}

func (r *groupRepository) Create(ctx context.Context, data *entity.Group) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var result entity.Group
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*entity.Group, error) {
	var result entity.Group
	if err := xcontext.DB(ctx).Take(&result, "slug=?", slug).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *groupRepository) GetList(ctx context.Context) ([]entity.Group, error) {
	var result []entity.Group
	if err := xcontext.DB(ctx).Order("title ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// Delete removes the row for good, so the slug can not be resolved anymore.
// Posts of the group must be detached before with PostRepository.ClearGroup.
func (r *groupRepository) Delete(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Unscoped().Delete(&entity.Group{}, "id=?", id).Error
}
