package models

import "time"

type ItemVariant string

const (
	VariantCombo ItemVariant = "combo"
	VariantDrink ItemVariant = "drink"
)

// CartItem is one line in a session cart. Display fields are copied from the
// catalog row at add time, so later catalog edits do not reprice a cart.
type CartItem struct {
	ItemID        string      `json:"item_id"`
	Variant       ItemVariant `json:"variant"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	UnitPrice     float64     `json:"unit_price"`
	OriginalPrice float64     `json:"original_price,omitempty"`
	ImageURL      string      `json:"image_url,omitempty"`
	Category      string      `json:"category,omitempty"`
	Quantity      int         `json:"quantity"`
}

// PromoDescriptor is the single applied promotion. At most one is active per
// cart; applying a new code replaces it.
type PromoDescriptor struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discount_percent"`
	FreeDelivery    bool    `json:"free_delivery"`
	Description     string  `json:"description"`
}

// CartRecord is the durable row behind a session cart. Items and Promo hold
// JSON payloads; rows that fail to parse on rehydrate count as an empty cart.
type CartRecord struct {
	SessionKey string    `gorm:"primaryKey;type:varchar(64)" json:"session_key"`
	Items      string    `gorm:"type:text" json:"items"`
	Promo      string    `gorm:"type:text" json:"promo"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
