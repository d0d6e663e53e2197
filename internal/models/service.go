package models

import "time"

// Service is a bookable hotel offering (spa, restaurant, event space...).
// Services have no capacity concept: any number of bookings may target the
// same service, including the same slot.
type Service struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `gorm:"not null" json:"category"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
