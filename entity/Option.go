package entity

import (
	"gorm.io/gorm"
)

const (
	OptionTypeSize  = "size"  // single choice, at most one per line
	OptionTypeExtra = "extra" // any number may be selected
)

type Option struct {
	gorm.Model
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Name       string `json:"name"`
	OptionType string `gorm:"not null;default:extra" json:"optionType"`
	MinSelect  int    `json:"minSelect"`
	MaxSelect  int    `json:"maxSelect"`
	IsRequired bool   `json:"isRequired"`
	SortOrder  int    `json:"sortOrder"`

	// values are preloaded often → keep
	Values []OptionValue `json:"values"`

	MenuItems []MenuItem `gorm:"many2many:menu_item_options;" json:"-"`
}
