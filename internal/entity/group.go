package entity

type Group struct {
	Base
	Slug        string `gorm:"unique;size:50"`
	Title       string `gorm:"size:200"`
	Description string `gorm:"type:text"`
}

func (Group) TableName() string {
	return "post_groups"
}
