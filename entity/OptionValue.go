package entity

import (
	"gorm.io/gorm"
)

type OptionValue struct {
	gorm.Model
	OptionID uint   `json:"optionId"`
	Option   Option `json:"-"`

	Name          string `json:"name"`
	PriceDelta    int64  `json:"priceDelta"` // minor units, may be negative
	DefaultSelect bool   `json:"defaultSelect"`
	IsAvailable   bool   `gorm:"default:true" json:"isAvailable"`
	SortOrder     int    `json:"sortOrder"`
}
