package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for stay dates. Stays are whole days.
const DateLayout = "2006-01-02"

var ErrInvalidStay = errors.New("checkout must be after checkin")

// StayRange is a half-open [Checkin, Checkout) interval: the checkout day
// itself is free for the next guest.
type StayRange struct {
	Checkin  time.Time
	Checkout time.Time
}

// ParseStayRange parses and validates a checkin/checkout pair.
func ParseStayRange(checkin, checkout string) (StayRange, error) {
	ci, err := time.Parse(DateLayout, checkin)
	if err != nil {
		return StayRange{}, fmt.Errorf("invalid checkin date %q: %w", checkin, err)
	}
	co, err := time.Parse(DateLayout, checkout)
	if err != nil {
		return StayRange{}, fmt.Errorf("invalid checkout date %q: %w", checkout, err)
	}
	r := StayRange{Checkin: ci, Checkout: co}
	if err := r.Validate(); err != nil {
		return StayRange{}, err
	}
	return r, nil
}

func (r StayRange) Validate() error {
	if !r.Checkout.After(r.Checkin) {
		return ErrInvalidStay
	}
	return nil
}

// Overlaps reports whether two half-open ranges share at least one night.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.Checkin.Before(other.Checkout) && other.Checkin.Before(r.Checkout)
}

// Contains reports whether day falls inside the stay.
func (r StayRange) Contains(day time.Time) bool {
	return !day.Before(r.Checkin) && day.Before(r.Checkout)
}

func (r StayRange) Nights() int {
	return int(r.Checkout.Sub(r.Checkin).Hours() / 24)
}
