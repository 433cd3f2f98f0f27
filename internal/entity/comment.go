package entity

type Comment struct {
	SnowFlakeBase

	PostID int64 `gorm:"index"`
	Post   Post  `gorm:"foreignKey:PostID"`

	AuthorID string
	Author   User `gorm:"foreignKey:AuthorID"`

	Text string `gorm:"type:text"`
}
