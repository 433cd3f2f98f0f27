package repository

import (
	"context"

	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// PostFilter narrows a post collection. Empty fields do not filter.
type PostFilter struct {
	AuthorID string
	GroupID  string

	// FollowedBy keeps only posts whose author is followed by this user.
	FollowedBy string
}

type PostRepository interface {
	Create(ctx context.Context, data *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	Update(ctx context.Context, data *entity.Post) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, filter PostFilter) (int64, error)
	GetList(ctx context.Context, filter PostFilter, offset, limit int) ([]entity.Post, error)
	ClearGroup(ctx context.Context, groupID string) error
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) filter(ctx context.Context, filter PostFilter) *gorm.DB {
	tx := xcontext.DB(ctx).Model(&entity.Post{})
	if filter.AuthorID != "" {
		tx = tx.Where("author_id=?", filter.AuthorID)
	}

	if filter.GroupID != "" {
		tx = tx.Where("group_id=?", filter.GroupID)
	}

	if filter.FollowedBy != "" {
		followed := xcontext.DB(ctx).Model(&entity.Follow{}).
			Select("author_id").Where("user_id=?", filter.FollowedBy)
		tx = tx.Where("author_id IN (?)", followed)
	}

	return tx
}

func (r *postRepository) Create(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var result entity.Post
	err := xcontext.DB(ctx).
		Preload("Author").
		Preload("Group").
		Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *postRepository) Update(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Model(&entity.Post{}).
		Where("id=?", data.ID).
		Updates(map[string]any{
			"text":       data.Text,
			"group_id":   data.GroupID,
			"image":      data.Image,
			"updated_at": data.UpdatedAt,
		}).Error
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	return xcontext.DB(ctx).Delete(&entity.Post{}, "id=?", id).Error
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var result int64
	if err := r.filter(ctx, filter).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}

// GetList returns posts newest first. Posts created at the same instant are
// ordered by id, which follows the insertion order.
func (r *postRepository) GetList(
	ctx context.Context, filter PostFilter, offset, limit int,
) ([]entity.Post, error) {
	var result []entity.Post
	err := r.filter(ctx, filter).
		Preload("Author").
		Preload("Group").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) ClearGroup(ctx context.Context, groupID string) error {
	return xcontext.DB(ctx).Model(&entity.Post{}).
		Where("group_id=?", groupID).
		Update("group_id", nil).Error
}
