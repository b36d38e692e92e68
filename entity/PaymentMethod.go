package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name     string         `gorm:"size:100;not null" json:"name"`
	Details  datatypes.JSON `json:"details"` // free-form: account numbers, instructions
	IsActive bool           `gorm:"default:true" json:"isActive"`

	Orders []Order `json:"-"`
}
