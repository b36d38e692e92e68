package entity

import (
	"gorm.io/gorm"
)

type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	OptionID uint   `json:"optionId"`
	Option   Option `json:"-"`

	OptionValueID uint        `json:"optionValueId"`
	OptionValue   OptionValue `json:"-"`

	// snapshot, same as OrderItem
	OptionName string `json:"optionName"`
	ValueName  string `json:"valueName"`
	PriceDelta int64  `json:"priceDelta"`
}
