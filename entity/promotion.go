package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage   = "percentage"
	DiscountFixedAmount  = "fixed_amount"
	DiscountFreeDelivery = "free_delivery"
)

// Promotion carries its discount policy as a tagged variant (DiscountType +
// Value/MaxDiscount) so pricing resolves it generically, never by matching
// the code string.
type Promotion struct {
	gorm.Model
	Code        string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description string `json:"description"`

	DiscountType string `gorm:"size:20;not null" json:"discountType"`

	// percentage: Value is the rate in percent, MaxDiscount caps the result.
	// fixed_amount: Value is the amount, MaxDiscount unused.
	// free_delivery: both unused.
	Value       int64 `json:"value"`
	MaxDiscount int64 `json:"maxDiscount"`

	MinOrder int64 `json:"minOrder"`

	StartAt *time.Time `json:"startAt,omitempty"`
	EndAt   *time.Time `json:"endAt,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	// empty set = applies to every restaurant
	Restaurants []Restaurant `gorm:"many2many:promotion_restaurants;" json:"-"`
}

// Discount returns the amount to subtract from the order total for a given
// subtotal. Free-delivery promos discount nothing here; they zero the
// delivery fee instead (see FreeDelivery).
func (p *Promotion) Discount(subtotal int64) int64 {
	switch p.DiscountType {
	case DiscountPercentage:
		d := subtotal * p.Value / 100
		if p.MaxDiscount > 0 && d > p.MaxDiscount {
			d = p.MaxDiscount
		}
		return d
	case DiscountFixedAmount:
		if p.Value > subtotal {
			return subtotal
		}
		return p.Value
	default:
		return 0
	}
}

func (p *Promotion) FreeDelivery() bool {
	return p.DiscountType == DiscountFreeDelivery
}

// ActiveAt reports whether the promotion is switched on and inside its
// validity window.
func (p *Promotion) ActiveAt(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartAt != nil && now.Before(*p.StartAt) {
		return false
	}
	if p.EndAt != nil && now.After(*p.EndAt) {
		return false
	}
	return true
}
