package model

import "mime/multipart"

// NewPostInput is the validated content of a created or edited post.
type NewPostInput struct {
	Text      string                `json:"text" validate:"required"`
	GroupSlug string                `json:"group" validate:"omitempty,slug"`
	Image     *multipart.FileHeader `json:"image" validate:"-"`
}

type CommentInput struct {
	Text string `json:"text" validate:"required"`
}

type CreatePostRequest struct {
	Text  string                `json:"text" form:"text"`
	Group string                `json:"group" form:"group"`
	Image *multipart.FileHeader `json:"-" form:"image"`
}

func (r CreatePostRequest) Input() NewPostInput {
	return NewPostInput{Text: r.Text, GroupSlug: r.Group, Image: r.Image}
}

type CreatePostResponse struct {
	Post Post `json:"post"`
}

type GetPostRequest struct {
	Username string `json:"username" form:"username"`
	PostID   int64  `json:"post_id,string" form:"post_id"`
}

type GetPostResponse struct {
	Post     Post      `json:"post"`
	Author   User      `json:"author"`
	Comments []Comment `json:"comments"`
}

type UpdatePostRequest struct {
	Username string                `json:"username" form:"username"`
	PostID   int64                 `json:"post_id,string" form:"post_id"`
	Text     string                `json:"text" form:"text"`
	Group    string                `json:"group" form:"group"`
	Image    *multipart.FileHeader `json:"-" form:"image"`
}

func (r UpdatePostRequest) Input() NewPostInput {
	return NewPostInput{Text: r.Text, GroupSlug: r.Group, Image: r.Image}
}

type UpdatePostResponse struct {
	Post Post `json:"post"`
}

type DeletePostRequest struct {
	Username string `json:"username" form:"username"`
	PostID   int64  `json:"post_id,string" form:"post_id"`
}

type DeletePostResponse struct{}

type AddCommentRequest struct {
	Username string `json:"username" form:"username"`
	PostID   int64  `json:"post_id,string" form:"post_id"`
	Text     string `json:"text" form:"text"`
}

type AddCommentResponse struct {
	Comment Comment `json:"comment"`
}
