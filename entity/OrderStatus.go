package entity

import (
	"gorm.io/gorm"
)

const (
	StatusNew       = "new"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"uniqueIndex;not null" json:"statusName"`

	Orders []Order `json:"-"`
}
