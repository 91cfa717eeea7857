package model

import "github.com/sealteck/doortrack/internal/constant"

type User struct {
	BaseModel
	Email     string            `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required,email"`
	FirstName string            `gorm:"type:varchar(30);not null;" json:"firstName" form:"firstName" binding:"required"`
	LastName  string            `gorm:"type:varchar(30);not null;" json:"lastName" form:"lastName" binding:"required"`
	Role      constant.UserRole `gorm:"type:varchar(20);not null;default:'client'" json:"role" form:"role"`
	// Empty for accounts that only sign in through Google.
	PasswordHash string `gorm:"type:text" json:"-"`
	ProfileURL   string `gorm:"type:text;default:null" json:"profileURL" form:"profileURL"`
}

func (u User) TableName() string {
	return "users"
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
