package model

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Group struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Post struct {
	ID        int64  `json:"id,string"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	Author    User   `json:"author"`
	Group     *Group `json:"group,omitempty"`
	Image     string `json:"image,omitempty"`
}

type Comment struct {
	ID        int64  `json:"id,string"`
	PostID    int64  `json:"post_id,string"`
	Author    User   `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type Page struct {
	Number      int    `json:"number"`
	NumPages    int    `json:"num_pages"`
	Count       int64  `json:"count"`
	HasPrevious bool   `json:"has_previous"`
	HasNext     bool   `json:"has_next"`
	Posts       []Post `json:"posts"`
}
