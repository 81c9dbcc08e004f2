package services

import (
	"github.com/alvinmajawa241/foodlink/entity"
)

// Fee rates in percent. Amounts are int64 minor units throughout.
const (
	serviceFeeRate = 10
	taxRate        = 16
)

// percentOf rounds half up, matching the checkout maths customers see.
func percentOf(amount, rate int64) int64 {
	return (amount*rate + 50) / 100
}

// Totals is the full pricing breakdown of a cart or order.
type Totals struct {
	Subtotal    int64
	DeliveryFee int64
	ServiceFee  int64
	Tax         int64
	Tip         int64
	Discount    int64
	Total       int64
}

// ComputeTotals derives the breakdown from the current lines, the
// restaurant's delivery fee, the tip and the applied promotion (nil when
// none). It is a pure function: carts and orders store its output but never
// adjust it by hand.
func ComputeTotals(items []entity.CartItem, deliveryFee, tip int64, promo *entity.Promotion) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Total
	}

	serviceFee := percentOf(subtotal, serviceFeeRate)
	tax := percentOf(subtotal+serviceFee, taxRate)

	var discount int64
	if promo != nil {
		if promo.FreeDelivery() {
			deliveryFee = 0
		}
		discount = promo.Discount(subtotal)
	}

	total := subtotal + deliveryFee + serviceFee + tax + tip - discount
	if total < 0 {
		total = 0
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		ServiceFee:  serviceFee,
		Tax:         tax,
		Tip:         tip,
		Discount:    discount,
		Total:       total,
	}
}
