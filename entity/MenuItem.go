package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"` // minor units
	PhotoURL string `json:"photoUrl"`

	IsAvailable bool `gorm:"default:true" json:"isAvailable"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Options    []Option    `gorm:"many2many:menu_item_options;" json:"-"`
	OrderItems []OrderItem `json:"-"`
}
