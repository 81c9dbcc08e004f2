package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty int `json:"qty"`

	// base price + selected option surcharges
	UnitPrice int64 `json:"unitPrice"`
	Total     int64 `json:"total"`

	// fingerprint of the selected option ids, used to merge identical lines
	SelectionHash string `json:"-"`

	Note string `json:"note,omitempty"`

	Selections []CartItemSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
}
