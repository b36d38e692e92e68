package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Number   string `gorm:"uniqueIndex;not null" json:"number"`
	Subtotal int64  `json:"subtotal"`
	Total    int64  `json:"total"`
	Note     string `json:"note"`

	// anonymous browsing session that placed the order
	SessionID string `gorm:"index" json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TableID *uint  `json:"tableId"`
	Table   *Table `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	PaymentMethodID *uint          `json:"paymentMethodId"`
	PaymentMethod   *PaymentMethod `json:"-"`

	// preload only on detail
	Items []OrderItem `json:"items,omitempty"`
}
