package entity

import (
	"gorm.io/gorm"
)

// ModifierGroup is a named set of choices on a menu item.
// Required + MaxSelect govern selection cardinality: MaxSelect 1 behaves as
// an exclusive choice, larger values as multi-select up to the cap.
type ModifierGroup struct {
	gorm.Model
	Name      string `json:"name"`
	Required  bool   `json:"required"`
	MaxSelect int    `gorm:"not null;default:1" json:"maxSelect"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Options []ModifierOption `gorm:"foreignKey:GroupID" json:"options"`
}

type ModifierOption struct {
	gorm.Model
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	IsDefault bool   `json:"isDefault"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	GroupID uint          `json:"groupId"`
	Group   ModifierGroup `gorm:"foreignKey:GroupID" json:"-"`
}
