package entity

import (
	"gorm.io/gorm"
)

// Table is a physical table with a QR deep link into the public menu.
type Table struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Label    string `json:"label"`
	QRToken  string `gorm:"uniqueIndex;not null" json:"qrToken"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Orders []Order `json:"-"`
}

func (Table) TableName() string { return "tables" }
