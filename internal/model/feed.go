package model

type GetIndexRequest struct {
	Page string `json:"page" form:"page"`
}

type GetIndexResponse struct {
	Page Page `json:"page"`
}

type GetGroupPostsRequest struct {
	Slug string `json:"slug" form:"slug"`
	Page string `json:"page" form:"page"`
}

type GetGroupPostsResponse struct {
	Group Group `json:"group"`
	Page  Page  `json:"page"`
}

type GetProfileRequest struct {
	Username string `json:"username" form:"username"`
	Page     string `json:"page" form:"page"`
}

type GetProfileResponse struct {
	Author    User `json:"author"`
	Page      Page `json:"page"`
	Following bool `json:"following"`
}

type GetFollowIndexRequest struct {
	Page string `json:"page" form:"page"`
}

type GetFollowIndexResponse struct {
	Page Page `json:"page"`
}

type InvalidateCacheRequest struct{}

type InvalidateCacheResponse struct{}
