package entity

import (
	"gorm.io/gorm"
)

// Cart is bound to at most one restaurant at a time; RestaurantID 0 means
// unbound (empty cart). Totals are recomputed from the lines on every
// mutation, never written independently.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	PromoCode   string `json:"promoCode,omitempty"`
	PromotionID *uint  `json:"-"`

	Tip int64 `json:"tip"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	ServiceFee  int64 `json:"serviceFee"`
	Tax         int64 `json:"tax"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
