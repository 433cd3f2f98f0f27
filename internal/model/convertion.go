package model

import (
	"time"

	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/paginator"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}

func ConvertGroup(group *entity.Group) Group {
	if group == nil {
		return Group{}
	}

	return Group{
		ID:          group.ID,
		Slug:        group.Slug,
		Title:       group.Title,
		Description: group.Description,
	}
}

// ConvertPost expects the Author and Group associations to be preloaded.
func ConvertPost(post *entity.Post) Post {
	if post == nil {
		return Post{}
	}

	p := Post{
		ID:        post.ID,
		Text:      post.Text,
		CreatedAt: post.CreatedAt.UTC().Format(DefaultTimeLayout),
		Author:    ConvertUser(&post.Author),
		Image:     post.Image.String,
	}

	if post.GroupID.Valid && post.Group.ID != "" {
		group := ConvertGroup(&post.Group)
		p.Group = &group
	}

	return p
}

func ConvertComment(comment *entity.Comment) Comment {
	if comment == nil {
		return Comment{}
	}

	return Comment{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Author:    ConvertUser(&comment.Author),
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt.UTC().Format(DefaultTimeLayout),
	}
}

func ConvertPage(page paginator.Page, posts []entity.Post) Page {
	clientPosts := []Post{}
	for i := range posts {
		clientPosts = append(clientPosts, ConvertPost(&posts[i]))
	}

	return Page{
		Number:      page.Number,
		NumPages:    page.NumPages,
		Count:       page.Count,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
		Posts:       clientPosts,
	}
}
