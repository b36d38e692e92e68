package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`

	MenuItems []MenuItem `json:"-"`
}
