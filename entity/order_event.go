package entity

import (
	"gorm.io/gorm"
)

// OrderEvent is one entry of an order's append-only timeline.
type OrderEvent struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	Status  OrderStatus `gorm:"size:20;not null" json:"status"`
	Message string      `json:"message"`
}
