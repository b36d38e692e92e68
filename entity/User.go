package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:owner" json:"role"` // admin | owner | staff

	// Relations, preload only when needed
	RestaurantsOwned []Restaurant    `gorm:"foreignKey:OwnerID" json:"-"`
	StaffOf          []StaffMember   `gorm:"foreignKey:UserID" json:"-"`
	PasswordResets   []PasswordReset `json:"-"`
}
