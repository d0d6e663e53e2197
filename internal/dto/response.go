package dto

import (
	"time"

	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/service"
)

type RoomResponse struct {
	ID     uint              `json:"id"`
	Name   string            `json:"name"`
	Price  float64           `json:"price"`
	Status models.RoomStatus `json:"status"`
}

type ServiceResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type RoomBookingResponse struct {
	ID            uint                 `json:"id"`
	Ref           string               `json:"ref"`
	RoomID        uint                 `json:"room_id"`
	RoomName      string               `json:"room_name,omitempty"`
	GuestName     string               `json:"guest_name,omitempty"`
	Email         string               `json:"email,omitempty"`
	Phone         string               `json:"phone,omitempty"`
	Checkin       string               `json:"checkin"`
	Checkout      string               `json:"checkout"`
	Nights        int                  `json:"nights"`
	TotalPrice    float64              `json:"total_price,omitempty"`
	Status        models.BookingStatus `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type ServiceBookingResponse struct {
	ID              uint                 `json:"id"`
	Ref             string               `json:"ref"`
	ServiceID       uint                 `json:"service_id"`
	ServiceName     string               `json:"service_name,omitempty"`
	ServiceCategory string               `json:"service_category,omitempty"`
	GuestName       string               `json:"guest_name,omitempty"`
	Email           string               `json:"email,omitempty"`
	Phone           string               `json:"phone,omitempty"`
	BookingDate     time.Time            `json:"booking_date"`
	Status          models.BookingStatus `json:"status"`
	PaymentStatus   models.PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time            `json:"created_at"`
}

type PaymentResponse struct {
	ID         uint                 `json:"id"`
	BookingRef string               `json:"booking_ref"`
	Amount     float64              `json:"amount"`
	Method     string               `json:"method"`
	Status     models.PaymentStatus `json:"status"`
	PaidAt     time.Time            `json:"paid_at"`
}

type GuestBookingsResponse struct {
	Guest           string                   `json:"guest"`
	Email           string                   `json:"email"`
	RoomBookings    []RoomBookingResponse    `json:"room_bookings"`
	ServiceBookings []ServiceBookingResponse `json:"service_bookings"`
}

type GuestResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRoomResponse(l service.RoomListing) RoomResponse {
	return RoomResponse{
		ID:     l.Room.ID,
		Name:   l.Room.Name,
		Price:  l.Room.Price,
		Status: l.Status,
	}
}

func ToServiceResponse(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Price:    s.Price,
	}
}

func ToRoomBookingResponse(b *models.RoomBooking) RoomBookingResponse {
	resp := RoomBookingResponse{
		ID:            b.ID,
		Ref:           b.Ref,
		RoomID:        b.RoomID,
		Checkin:       b.Checkin.Format(models.DateLayout),
		Checkout:      b.Checkout.Format(models.DateLayout),
		Nights:        b.Stay().Nights(),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
	if b.Room != nil {
		resp.RoomName = b.Room.Name
		resp.TotalPrice = b.Room.Price * float64(resp.Nights)
	}
	if b.Guest != nil {
		resp.GuestName = b.Guest.Name
		resp.Email = b.Guest.Email
		resp.Phone = b.Guest.Phone
	}
	return resp
}

func ToServiceBookingResponse(b *models.ServiceBooking) ServiceBookingResponse {
	resp := ServiceBookingResponse{
		ID:            b.ID,
		Ref:           b.Ref,
		ServiceID:     b.ServiceID,
		BookingDate:   b.BookingDate,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
	if b.Service != nil {
		resp.ServiceName = b.Service.Name
		resp.ServiceCategory = b.Service.Category
	}
	if b.Guest != nil {
		resp.GuestName = b.Guest.Name
		resp.Email = b.Guest.Email
		resp.Phone = b.Guest.Phone
	}
	return resp
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		BookingRef: p.BookingRef,
		Amount:     p.Amount,
		Method:     p.Method,
		Status:     p.Status,
		PaidAt:     p.PaidAt,
	}
}

func ToGuestResponse(g *models.Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		CreatedAt: g.CreatedAt,
	}
}

func ToGuestBookingsResponse(gb *service.GuestBookings) GuestBookingsResponse {
	resp := GuestBookingsResponse{
		Guest:           gb.Guest.Name,
		Email:           gb.Guest.Email,
		RoomBookings:    make([]RoomBookingResponse, len(gb.RoomBookings)),
		ServiceBookings: make([]ServiceBookingResponse, len(gb.ServiceBookings)),
	}
	for i := range gb.RoomBookings {
		resp.RoomBookings[i] = ToRoomBookingResponse(&gb.RoomBookings[i])
	}
	for i := range gb.ServiceBookings {
		resp.ServiceBookings[i] = ToServiceBookingResponse(&gb.ServiceBookings[i])
	}
	return resp
}
