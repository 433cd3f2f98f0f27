package entity

type User struct {
	Base
	Username string `gorm:"unique;size:150"`
	Name     string
}
