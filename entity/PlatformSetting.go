package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PlatformSetting struct {
	gorm.Model
	Key   string         `gorm:"uniqueIndex;not null" json:"key"`
	Value datatypes.JSON `json:"value"`
}
