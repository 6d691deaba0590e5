package models

import "time"

// Session is an anonymous browsing session. The SessionKey scopes the cart
// row and the transient order snapshots; there are no user accounts.
type Session struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionKey string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"session_key"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
