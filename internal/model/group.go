package model

type GroupInput struct {
	Slug        string `json:"slug" validate:"required,slug"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

type CreateGroupRequest struct {
	Slug        string `json:"slug" form:"slug"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

func (r CreateGroupRequest) Input() GroupInput {
	return GroupInput{Slug: r.Slug, Title: r.Title, Description: r.Description}
}

type CreateGroupResponse struct {
	Group Group `json:"group"`
}

type GetGroupRequest struct {
	Slug string `json:"slug" form:"slug"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type GetGroupsRequest struct{}

type GetGroupsResponse struct {
	Groups []Group `json:"groups"`
}

type DeleteGroupRequest struct {
	Slug string `json:"slug" form:"slug"`
}

type DeleteGroupResponse struct{}
