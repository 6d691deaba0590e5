package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// OrderSnapshot is the immutable record of a completed checkout. It is
// written once at submission, read by the confirmation view, and deleted
// when the session ends. Items holds the line items as JSON, frozen at
// checkout time.
type OrderSnapshot struct {
	OrderID       string       `gorm:"primaryKey;type:varchar(32)" json:"order_id"`
	SessionKey    string       `gorm:"type:varchar(64);index;not null" json:"-"`
	Items         string       `gorm:"type:text;not null" json:"-"`
	CustomerName  string       `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone string       `gorm:"type:varchar(20);not null" json:"customer_phone"`
	Street        string       `gorm:"type:varchar(255)" json:"street,omitempty"`
	Number        string       `gorm:"type:varchar(20)" json:"number,omitempty"`
	Complement    string       `gorm:"type:varchar(255)" json:"complement,omitempty"`
	Neighborhood  string       `gorm:"type:varchar(255)" json:"neighborhood,omitempty"`
	ZipCode       string       `gorm:"type:varchar(10)" json:"zip_code,omitempty"`
	DeliveryType  DeliveryType `gorm:"type:varchar(10);not null" json:"delivery_type"`
	Subtotal      float64      `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount      float64      `gorm:"type:decimal(10,2);not null" json:"discount"`
	DeliveryFee   float64      `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	Total         float64      `gorm:"type:decimal(10,2);not null" json:"total"`
	PromoCode     string       `gorm:"type:varchar(50)" json:"promo_code,omitempty"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
}

// LineItems decodes the frozen item list.
func (o *OrderSnapshot) LineItems() ([]CartItem, error) {
	var items []CartItem
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ComposedAddress renders the delivery address as a single line, or the
// pickup marker when no address applies.
func (o *OrderSnapshot) ComposedAddress() string {
	if o.DeliveryType == DeliveryTypePickup {
		return "Retirada no local"
	}
	addr := fmt.Sprintf("%s, %s", o.Street, o.Number)
	if o.Complement != "" {
		addr += ", " + o.Complement
	}
	return fmt.Sprintf("%s, %s, CEP: %s", addr, o.Neighborhood, o.ZipCode)
}
