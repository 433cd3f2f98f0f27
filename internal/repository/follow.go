package repository

import (
	"context"
	"errors"

	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

var ErrFollowSelf = errors.New("cannot follow self")

type FollowRepository interface {
	Create(ctx context.Context, userID, authorID string) error
	Delete(ctx context.Context, userID, authorID string) error
	Exists(ctx context.Context, userID, authorID string) (bool, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

// Create adds the edge if it does not exist yet.
func (r *followRepository) Create(ctx context.Context, userID, authorID string) error {
	if userID == authorID {
		return ErrFollowSelf
	}

	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.Follow{UserID: userID, AuthorID: authorID}).Error
}

// Delete removes the edge, a missing edge is not an error.
func (r *followRepository) Delete(ctx context.Context, userID, authorID string) error {
	return xcontext.DB(ctx).
		Where("user_id=? AND author_id=?", userID, authorID).
		Delete(&entity.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("user_id=? AND author_id=?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *followRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("user_id=?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
