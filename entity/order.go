package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Order is an immutable snapshot of the cart at checkout. Status and
// PaymentStatus are the only fields written after creation; every status
// change appends an OrderEvent.
type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:64;uniqueIndex;not null" json:"orderNumber"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Status OrderStatus `gorm:"size:20;not null;default:pending" json:"status"`

	Subtotal    int64  `json:"subtotal"`
	DeliveryFee int64  `json:"deliveryFee"`
	ServiceFee  int64  `json:"serviceFee"`
	Tax         int64  `json:"tax"`
	Tip         int64  `json:"tip"`
	Discount    int64  `json:"discount"`
	Total       int64  `json:"total"`
	PromoCode   string `json:"promoCode,omitempty"`

	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes,omitempty"`

	PaymentMethodID *uint          `json:"paymentMethodId,omitempty"`
	PaymentMethod   *PaymentMethod `json:"-"`
	PaymentStatus   string         `gorm:"size:20;not null;default:pending" json:"paymentStatus"`

	CourierID *uint    `json:"courierId,omitempty"`
	Courier   *Courier `json:"-"`

	EstimatedDeliveryAt *time.Time `json:"estimatedDeliveryAt,omitempty"`

	Items    []OrderItem  `json:"-"`
	Events   []OrderEvent `json:"-"`
	Payments []Payment    `json:"-"`
	Reviews  []Review     `json:"-"`
}
