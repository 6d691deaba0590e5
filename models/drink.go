package models

import "time"

// Drink categories as shown in the storefront filters.
const (
	DrinkCategorySoda  = "refrigerante"
	DrinkCategoryJuice = "suco"
	DrinkCategoryBeer  = "cerveja"
)

type Drink struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL        string    `gorm:"type:varchar(255)" json:"image_url"`
	Category        string    `gorm:"type:varchar(20);not null;index" json:"category"`
	Size            string    `gorm:"type:varchar(20)" json:"size,omitempty"`
	AlcoholContent  float64   `gorm:"type:decimal(3,1)" json:"alcohol_content,omitempty"`
	Temperature     string    `gorm:"type:varchar(20)" json:"temperature"`
	Rating          float64   `gorm:"type:decimal(3,1)" json:"rating"`
	ReviewCount     int       `json:"review_count"`
	Badge           string    `gorm:"type:varchar(50)" json:"badge,omitempty"`
	IsLimited       bool      `json:"is_limited"`
	LimitedQuantity int       `json:"limited_quantity,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
