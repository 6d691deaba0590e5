// Package pricing derives order totals from cart contents, the applied
// promotion and the delivery selection. Everything here is pure: totals are
// recomputed from inputs on every call and never cached.
package pricing

import (
	"fmt"

	"github.com/brasacombo/storefront-app/models"
)

// Fixed pricing constants of the storefront.
const (
	// FreeDeliveryThreshold is the post-discount amount above which
	// delivery costs nothing.
	FreeDeliveryThreshold = 50.00
	// DeliveryFee is the flat fee charged below the threshold.
	DeliveryFee = 8.99
	// PromoDiscountPercent is the canonical PROMO3 rate.
	PromoDiscountPercent = 15.0
)

// Quote is the derived price breakdown for one cart state.
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	DeliveryFee  float64 `json:"delivery_fee"`
	Total        float64 `json:"total"`
	FreeDelivery bool    `json:"free_delivery"`
}

// Calculate derives subtotal, discount, delivery fee and total. Pickup never
// pays delivery; a free-delivery promo beats the threshold rule. Rounding
// happens only when amounts are formatted for display or serialization.
func Calculate(items []models.CartItem, promo *models.PromoDescriptor, deliveryType models.DeliveryType) Quote {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	var discount float64
	if promo != nil {
		discount = subtotal * promo.DiscountPercent / 100
	}
	afterDiscount := subtotal - discount

	var fee float64
	switch {
	case deliveryType == models.DeliveryTypePickup:
		fee = 0
	case promo != nil && promo.FreeDelivery:
		fee = 0
	case afterDiscount >= FreeDeliveryThreshold:
		fee = 0
	default:
		fee = DeliveryFee
	}

	return Quote{
		Subtotal:     subtotal,
		Discount:     discount,
		DeliveryFee:  fee,
		Total:        afterDiscount + fee,
		FreeDelivery: fee == 0 && deliveryType == models.DeliveryTypeDelivery,
	}
}

// ItemCount sums quantities across all lines (the cart badge number).
func ItemCount(items []models.CartItem) int {
	var n int
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// FormatAmount renders a monetary value as a fixed two-decimal string, the
// format the payment gateway expects.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
