package models

import "time"

// Payment records money taken against a booking, identified by the booking
// ref. At most one payment may exist per booking; the unique index backs the
// idempotency guard in the payment service.
type Payment struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	BookingRef string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"booking_ref"`
	Amount     float64       `gorm:"not null" json:"amount"`
	Method     string        `gorm:"type:varchar(30);not null;default:'offline'" json:"method"`
	Status     PaymentStatus `gorm:"type:varchar(10);not null;default:'paid'" json:"status"`
	PaidAt     time.Time     `gorm:"not null" json:"paid_at"`
	CreatedAt  time.Time     `json:"created_at"`
}
