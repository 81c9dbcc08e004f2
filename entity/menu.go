package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name      string `json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image,omitempty"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
	Calories    int    `json:"calories,omitempty"`

	CategoryID uint         `json:"categoryId"`
	Category   MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// preloaded on menu endpoints; the cart validates against these
	Modifiers []ModifierGroup `gorm:"foreignKey:MenuItemID" json:"modifiers"`
}
