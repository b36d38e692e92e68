package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Per-restaurant staff membership. The owner is not listed here;
// ownership is Restaurant.OwnerID.
type StaffMember struct {
	gorm.Model
	RestaurantID uint       `gorm:"uniqueIndex:idx_staff_rest_user" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_staff_rest_user" json:"userId"`
	User   User `json:"user"`

	Role         string         `gorm:"not null;default:kitchen" json:"role"` // manager | kitchen | waiter
	Capabilities datatypes.JSON `json:"capabilities"`
}
