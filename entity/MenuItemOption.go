package entity

type MenuItemOption struct {
	MenuItemID uint `gorm:"primaryKey" json:"menuItemId"`
	OptionID   uint `gorm:"primaryKey" json:"optionId"`
	SortOrder  int  `gorm:"not null;default:0" json:"sortOrder"`
}
