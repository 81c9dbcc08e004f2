package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
	RoleCourier  = "courier"
	RoleAdmin    = "admin"
)

const (
	UserActive    = "active"
	UserSuspended = "suspended"
	UserPending   = "pending"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`
	Status      string `gorm:"not null;default:active" json:"status"`

	// couriers only; empty for other roles
	KYCStatus string `json:"kycStatus,omitempty"`

	// Relations, preload only when needed
	Addresses        []Address       `json:"-"`
	PaymentMethods   []PaymentMethod `json:"-"`
	RestaurantsOwned []Restaurant    `gorm:"foreignKey:MerchantID" json:"-"`
	Orders           []Order         `json:"-"`
	Reviews          []Review        `json:"-"`
	CourierProfile   *Courier        `gorm:"foreignKey:UserID" json:"-"`
}
