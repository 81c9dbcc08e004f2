package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	MethodCard        = "card"
	MethodMobileMoney = "mobile_money"
	MethodWallet      = "wallet"
)

type PaymentMethod struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Type        string `gorm:"size:20;not null" json:"type"`
	Provider    string `json:"provider"`
	Last4       string `json:"last4,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IsDefault   bool   `json:"isDefault"`

	Payments []Payment `json:"-"`
}

type Payment struct {
	gorm.Model
	Amount int64      `json:"amount"`
	PaidAt *time.Time `json:"paidAt,omitempty"`

	Status string `gorm:"size:20;not null;default:pending" json:"status"`

	PaymentMethodID uint          `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `json:"-"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
