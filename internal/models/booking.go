package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether a booking in this status still occupies its unit.
func (s BookingStatus) Active() bool {
	return s != StatusCancelled
}

// CanTransition encodes the booking state machine:
// pending -> confirmed (payment), confirmed -> completed, and
// pending/confirmed -> cancelled. cancelled and completed are terminal.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// RoomBooking occupies a room for a half-open [checkin, checkout) range of
// whole days. Ref is the opaque identifier handed to callers; payments are
// keyed by it.
type RoomBooking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Ref           string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"ref"`
	RoomID        uint          `gorm:"not null;index" json:"room_id"`
	GuestID       uint          `gorm:"not null;index" json:"guest_id"`
	Checkin       time.Time     `gorm:"not null" json:"checkin"`
	Checkout      time.Time     `gorm:"not null" json:"checkout"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);not null;default:'unpaid'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

func (b *RoomBooking) Stay() StayRange {
	return StayRange{Checkin: b.Checkin, Checkout: b.Checkout}
}

// ServiceBooking targets a service at a single instant.
type ServiceBooking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Ref           string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"ref"`
	ServiceID     uint          `gorm:"not null;index" json:"service_id"`
	GuestID       uint          `gorm:"not null;index" json:"guest_id"`
	BookingDate   time.Time     `gorm:"not null" json:"booking_date"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);not null;default:'unpaid'" json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Guest   *Guest   `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}
