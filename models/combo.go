package models

import "time"

type Combo struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	OriginalPrice   float64   `gorm:"type:decimal(10,2);not null" json:"original_price"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL        string    `gorm:"type:varchar(255)" json:"image_url"`
	Badge           string    `gorm:"type:varchar(50)" json:"badge,omitempty"`
	Rating          float64   `gorm:"type:decimal(3,1)" json:"rating"`
	ReviewCount     int       `json:"review_count"`
	IsLimited       bool      `json:"is_limited"`
	LimitedQuantity int       `json:"limited_quantity,omitempty"`
	HasCountdown    bool      `json:"has_countdown"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}
