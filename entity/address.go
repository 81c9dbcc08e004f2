package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Label        string  `json:"label"`
	FullAddress  string  `json:"fullAddress"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Instructions string  `json:"instructions,omitempty"`
	IsDefault    bool    `json:"isDefault"`
}
