package entity

import "time"

// Follow is a directed edge, UserID receives the posts of AuthorID in the
// followed feed.
type Follow struct {
	CreatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	AuthorID string `gorm:"primaryKey;index"`
	Author   User   `gorm:"foreignKey:AuthorID"`
}
