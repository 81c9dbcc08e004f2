package entity

import (
	"gorm.io/gorm"
)

type Courier struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	VehicleType  string `gorm:"size:20" json:"vehicleType"` // bicycle | motorbike | car
	PlateNumber  string `json:"plateNumber"`
	VehicleColor string `json:"vehicleColor,omitempty"`

	Rating          float64 `json:"rating"`
	ReviewCount     int     `json:"reviewCount"`
	TotalDeliveries int     `json:"totalDeliveries"`
	IsOnline        bool    `json:"isOnline"`

	TotalEarnings int64 `json:"totalEarnings"`

	Jobs []CourierJob `json:"-"`
}
