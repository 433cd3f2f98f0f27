package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

var (
	// Users
	User1 = &entity.User{Base: entity.Base{ID: "user1"}, Username: "alice", Name: "Alice"}
	User2 = &entity.User{Base: entity.Base{ID: "user2"}, Username: "bob", Name: "Bob"}
	User3 = &entity.User{Base: entity.Base{ID: "user3"}, Username: "carol", Name: "Carol"}

	Users = []*entity.User{User1, User2, User3}

	// Groups
	Group1 = &entity.Group{
		Base:        entity.Base{ID: "group1"},
		Slug:        "news",
		Title:       "News",
		Description: "What happened today",
	}

	Group2 = &entity.Group{
		Base:        entity.Base{ID: "group2"},
		Slug:        "cats",
		Title:       "Cats",
		Description: "Only cats",
	}

	Groups = []*entity.Group{Group1, Group2}

	// Posts
	Post1 = &entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{
			ID:        1001,
			CreatedAt: time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		Text:     "My cat sleeps all day",
		AuthorID: User1.ID,
		GroupID:  sql.NullString{Valid: true, String: Group2.ID},
	}

	Post2 = &entity.Post{
		SnowFlakeBase: entity.SnowFlakeBase{
			ID:        1002,
			CreatedAt: time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		Text:     "First post of bob",
		AuthorID: User2.ID,
	}

	Posts = []*entity.Post{Post1, Post2}

	// Comments
	Comment1 = &entity.Comment{
		SnowFlakeBase: entity.SnowFlakeBase{
			ID:        2001,
			CreatedAt: time.Date(2023, 1, 1, 11, 0, 0, 0, time.UTC),
		},
		PostID:   Post1.ID,
		AuthorID: User2.ID,
		Text:     "Nice cat",
	}

	Comment2 = &entity.Comment{
		SnowFlakeBase: entity.SnowFlakeBase{
			ID:        2002,
			CreatedAt: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		PostID:   Post1.ID,
		AuthorID: User3.ID,
		Text:     "Agree",
	}

	Comments = []*entity.Comment{Comment1, Comment2}
)

// CreateFixtureDb inserts users, groups, posts and comments. There is no
// follow edge in the fixture.
func CreateFixtureDb(ctx context.Context) {
	db := xcontext.DB(ctx)

	for _, user := range Users {
		copied := *user
		if err := db.Create(&copied).Error; err != nil {
			panic(err)
		}
	}

	for _, group := range Groups {
		copied := *group
		if err := db.Create(&copied).Error; err != nil {
			panic(err)
		}
	}

	for _, post := range Posts {
		copied := *post
		if err := db.Create(&copied).Error; err != nil {
			panic(err)
		}
	}

	for _, comment := range Comments {
		copied := *comment
		if err := db.Create(&copied).Error; err != nil {
			panic(err)
		}
	}
}
