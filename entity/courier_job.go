package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	JobOffered   = "offered"
	JobAccepted  = "accepted"
	JobPickedUp  = "picked_up"
	JobDelivered = "delivered"
	JobCancelled = "cancelled"
)

type CourierJob struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	CourierID uint    `json:"courierId"`
	Courier   Courier `json:"-"`

	Status string `gorm:"size:20;not null;default:offered" json:"status"`

	Earnings   int64   `json:"earnings"`
	DistanceKM float64 `json:"distanceKm"`

	OfferExpiry *time.Time `json:"offerExpiry,omitempty"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}
