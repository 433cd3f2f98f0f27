package model

type FollowRequest struct {
	Username string `json:"username" form:"username"`
}

type FollowResponse struct {
	Following bool `json:"following"`
}

type UnfollowRequest struct {
	Username string `json:"username" form:"username"`
}

type UnfollowResponse struct {
	Following bool `json:"following"`
}

type GetFollowStatusRequest struct {
	Username string `json:"username" form:"username"`
}

type GetFollowStatusResponse struct {
	Following bool `json:"following"`
}
