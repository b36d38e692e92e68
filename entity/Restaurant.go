package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Currency    string `gorm:"default:USD" json:"currency"`
	LogoURL     string `json:"logoUrl"`
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	OwnerID uint `json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Categories     []Category      `json:"-"`
	MenuItems      []MenuItem      `json:"-"`
	Tables         []Table         `json:"-"`
	Orders         []Order         `json:"-"`
	Staff          []StaffMember   `json:"-"`
	PaymentMethods []PaymentMethod `json:"-"`
}
