package entity

import (
	"database/sql"
	"time"
)

type Post struct {
	SnowFlakeBase
	UpdatedAt time.Time

	Text string `gorm:"type:text"`

	AuthorID string `gorm:"index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	GroupID sql.NullString `gorm:"index"`
	Group   Group          `gorm:"foreignKey:GroupID"`

	Image sql.NullString
}
