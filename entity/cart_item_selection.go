package entity

import (
	"gorm.io/gorm"
)

type CartItemSelection struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	GroupID  uint           `json:"groupId"`
	Group    ModifierGroup  `gorm:"foreignKey:GroupID" json:"-"`
	OptionID uint           `json:"optionId"`
	Option   ModifierOption `gorm:"foreignKey:OptionID" json:"-"`

	PriceDelta int64 `json:"priceDelta"`
}
