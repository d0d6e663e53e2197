package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"github.com/Breezy-Reese/hotel/pkg/rabbitmq"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrRoomUnavailable   = errors.New("room is not available for the selected dates")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrValidation        = errors.New("invalid booking details")
)

// GuestDetails identifies the person booking; the guest row is upserted by
// email inside the booking transaction.
type GuestDetails struct {
	Name  string
	Email string
	Phone string
}

type BookRoomInput struct {
	RoomID uint
	Guest  GuestDetails
	Stay   models.StayRange
}

type BookServiceInput struct {
	ServiceID   uint
	Guest       GuestDetails
	BookingDate time.Time
}

// GuestBookings is a guest's full history across both booking kinds.
type GuestBookings struct {
	Guest           *models.Guest
	RoomBookings    []models.RoomBooking
	ServiceBookings []models.ServiceBooking
}

type BookingService interface {
	BookRoom(ctx context.Context, input BookRoomInput) (*models.RoomBooking, error)
	BookService(ctx context.Context, input BookServiceInput) (*models.ServiceBooking, error)
	ListRoomBookings(ctx context.Context) ([]models.RoomBooking, error)
	ListServiceBookings(ctx context.Context) ([]models.ServiceBooking, error)
	ListGuestBookings(ctx context.Context, email string) (*GuestBookings, error)
	ListGuests(ctx context.Context) ([]models.Guest, error)
	TransitionRoomBooking(ctx context.Context, id uint, next models.BookingStatus) (*models.RoomBooking, error)
	TransitionServiceBooking(ctx context.Context, id uint, next models.BookingStatus) (*models.ServiceBooking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	serviceRepo repository.ServiceRepository
	guestRepo   repository.GuestRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	serviceRepo repository.ServiceRepository,
	guestRepo repository.GuestRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		serviceRepo: serviceRepo,
		guestRepo:   guestRepo,
		publisher:   publisher,
	}
}

func (g GuestDetails) validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: guest name is required", ErrValidation)
	}
	if strings.TrimSpace(g.Email) == "" {
		return fmt.Errorf("%w: guest email is required", ErrValidation)
	}
	return nil
}

func (g GuestDetails) normalized() GuestDetails {
	g.Email = strings.ToLower(strings.TrimSpace(g.Email))
	g.Name = strings.TrimSpace(g.Name)
	return g
}

// BookRoom runs the reservation as a single transaction guarded by a row
// lock on the room: two concurrent attempts against overlapping dates cannot
// both observe the room as free.
func (s *bookingService) BookRoom(ctx context.Context, input BookRoomInput) (*models.RoomBooking, error) {
	// All validation happens before any storage access.
	if err := input.Guest.validate(); err != nil {
		return nil, err
	}
	if err := input.Stay.Validate(); err != nil {
		return nil, err
	}
	guestIn := input.Guest.normalized()

	var result *models.RoomBooking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the room row — serializes concurrent reservation attempts
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, input.RoomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		// 2. Overlap check against every active booking on the room
		active, err := s.bookingRepo.FindActiveByRoom(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		for _, existing := range active {
			if input.Stay.Overlaps(existing.Stay()) {
				return ErrRoomUnavailable
			}
		}

		// 3. Upsert the guest by email
		guest := &models.Guest{
			Name:  guestIn.Name,
			Email: guestIn.Email,
			Phone: guestIn.Phone,
		}
		if err := s.guestRepo.UpsertByEmail(ctx, tx, guest); err != nil {
			return fmt.Errorf("upsert guest: %w", err)
		}

		// 4. Append the booking as pending
		booking := &models.RoomBooking{
			Ref:           uuid.NewString(),
			RoomID:        room.ID,
			GuestID:       guest.ID,
			Checkin:       input.Stay.Checkin,
			Checkout:      input.Stay.Checkout,
			Status:        models.StatusPending,
			PaymentStatus: models.PaymentUnpaid,
		}
		if err := s.bookingRepo.CreateRoomBooking(ctx, tx, booking); err != nil {
			return fmt.Errorf("create room booking: %w", err)
		}

		booking.Room = room
		booking.Guest = guest
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.created", result)
	return result, nil
}

// BookService has no capacity constraint: duplicate bookings for the same
// service and slot are permitted.
func (s *bookingService) BookService(ctx context.Context, input BookServiceInput) (*models.ServiceBooking, error) {
	if err := input.Guest.validate(); err != nil {
		return nil, err
	}
	if input.BookingDate.IsZero() {
		return nil, fmt.Errorf("%w: booking date is required", ErrValidation)
	}
	guestIn := input.Guest.normalized()

	var result *models.ServiceBooking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		svc, err := s.serviceRepo.FindByID(ctx, input.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceNotFound
			}
			return err
		}

		guest := &models.Guest{
			Name:  guestIn.Name,
			Email: guestIn.Email,
			Phone: guestIn.Phone,
		}
		if err := s.guestRepo.UpsertByEmail(ctx, tx, guest); err != nil {
			return fmt.Errorf("upsert guest: %w", err)
		}

		booking := &models.ServiceBooking{
			Ref:           uuid.NewString(),
			ServiceID:     svc.ID,
			GuestID:       guest.ID,
			BookingDate:   input.BookingDate,
			Status:        models.StatusPending,
			PaymentStatus: models.PaymentUnpaid,
		}
		if err := s.bookingRepo.CreateServiceBooking(ctx, tx, booking); err != nil {
			return fmt.Errorf("create service booking: %w", err)
		}

		booking.Service = svc
		booking.Guest = guest
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.created", result)
	return result, nil
}

func (s *bookingService) ListRoomBookings(ctx context.Context) ([]models.RoomBooking, error) {
	return s.bookingRepo.ListRoomBookings(ctx)
}

func (s *bookingService) ListServiceBookings(ctx context.Context) ([]models.ServiceBooking, error) {
	return s.bookingRepo.ListServiceBookings(ctx)
}

func (s *bookingService) ListGuestBookings(ctx context.Context, email string) (*GuestBookings, error) {
	guest, err := s.guestRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	rooms, err := s.bookingRepo.ListRoomBookingsByGuest(ctx, guest.ID)
	if err != nil {
		return nil, err
	}
	services, err := s.bookingRepo.ListServiceBookingsByGuest(ctx, guest.ID)
	if err != nil {
		return nil, err
	}

	return &GuestBookings{Guest: guest, RoomBookings: rooms, ServiceBookings: services}, nil
}

func (s *bookingService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	return s.guestRepo.FindAll(ctx)
}

// TransitionRoomBooking applies an admin-driven status change, guarded by
// the state machine; invalid transitions are rejected, never applied.
func (s *bookingService) TransitionRoomBooking(ctx context.Context, id uint, next models.BookingStatus) (*models.RoomBooking, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	var result *models.RoomBooking
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the row so the state-machine check and the update are one
		// atomic step; without it two admins can race past CanTransition.
		booking, err := s.bookingRepo.FindRoomBookingByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if !booking.Status.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
		}
		if err := s.bookingRepo.UpdateRoomBookingStatus(ctx, tx, booking.ID, next); err != nil {
			return err
		}
		booking.Status = next
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatus(result.Ref, next)
	return result, nil
}

func (s *bookingService) TransitionServiceBooking(ctx context.Context, id uint, next models.BookingStatus) (*models.ServiceBooking, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	var result *models.ServiceBooking
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindServiceBookingByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if !booking.Status.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
		}
		if err := s.bookingRepo.UpdateServiceBookingStatus(ctx, tx, booking.ID, next); err != nil {
			return err
		}
		booking.Status = next
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishStatus(result.Ref, next)
	return result, nil
}

// publish emits best-effort events after commit; a broker outage never fails
// a booking.
func (s *bookingService) publish(key string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(key, payload); err != nil {
		log.Printf("publish %s: %v", key, err)
	}
}

func (s *bookingService) publishStatus(ref string, status models.BookingStatus) {
	key := "booking.status_changed"
	if status == models.StatusCancelled {
		key = "booking.cancelled"
	}
	s.publish(key, map[string]any{"ref": ref, "status": status})
}
