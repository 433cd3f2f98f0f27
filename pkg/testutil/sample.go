package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/idutil"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

// SamplePost creates a new post in database with a random text by User1. The
// sample post can be overwritten by non-zero fields of init.
//
// This function returns the sample post.
func SamplePost(ctx context.Context, init entity.Post) (entity.Post, error) {
	sample := entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{
			ID:        idutil.NewID(),
			CreatedAt: time.Now().UTC(),
		},
		Text:     uuid.NewString(),
		AuthorID: User1.ID,
	}

	overwriteFields(&sample, init)

	if err := xcontext.DB(ctx).Create(&sample).Error; err != nil {
		return sample, err
	}

	return sample, nil
}

// SampleUser creates a user with random id and the given username.
func SampleUser(ctx context.Context, username string) (entity.User, error) {
	sample := entity.User{
		Base:     entity.Base{ID: uuid.NewString()},
		Username: username,
		Name:     username,
	}

	if err := xcontext.DB(ctx).Create(&sample).Error; err != nil {
		return sample, err
	}

	return sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	overwriteValue(reflect.ValueOf(origin).Elem(), reflect.ValueOf(overwrite))
}

// overwriteValue copies non-zero fields. Embedded structs are merged field by
// field.
func overwriteValue(origin, overwrite reflect.Value) {
	for i := 0; i < overwrite.NumField(); i++ {
		field := overwrite.Field(i)
		if field.IsZero() {
			continue
		}

		if overwrite.Type().Field(i).Anonymous && field.Kind() == reflect.Struct {
			overwriteValue(origin.Field(i), field)
			continue
		}

		origin.Field(i).Set(field)
	}
}
