package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"github.com/Breezy-Reese/hotel/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrAlreadyPaid      = errors.New("booking already has a payment")
	ErrBookingCancelled = errors.New("cannot pay for a cancelled booking")
	ErrInvalidAmount    = errors.New("payment amount must be positive")
)

type PaymentService interface {
	RecordPayment(ctx context.Context, bookingRef string, amount float64, method string) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	publisher   *rabbitmq.Publisher
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	publisher *rabbitmq.Publisher,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		publisher:   publisher,
	}
}

// RecordPayment inserts exactly one payment per booking and flips the
// booking to confirmed. A second attempt against the same booking is
// rejected, so retries cannot double-charge; the unique index on
// payments.booking_ref backs the in-transaction guard.
func (s *paymentService) RecordPayment(ctx context.Context, bookingRef string, amount float64, method string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if method == "" {
		method = "offline"
	}

	var result *models.Payment

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		status, markPaid, err := s.lockBooking(ctx, tx, bookingRef)
		if err != nil {
			return err
		}

		switch {
		case status == models.StatusCancelled:
			return ErrBookingCancelled
		case !status.CanTransition(models.StatusConfirmed):
			// confirmed or completed: a payment already went through
			return ErrAlreadyPaid
		}

		if _, err := s.paymentRepo.FindByBookingRef(ctx, tx, bookingRef); err == nil {
			return ErrAlreadyPaid
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		payment := &models.Payment{
			BookingRef: bookingRef,
			Amount:     amount,
			Method:     method,
			Status:     models.PaymentPaid,
			PaidAt:     time.Now(),
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		if err := markPaid(); err != nil {
			return fmt.Errorf("confirm booking: %w", err)
		}

		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish("payment.recorded", result); err != nil {
			log.Printf("publish payment.recorded: %v", err)
		}
	}
	return result, nil
}

// lockBooking resolves the ref against both booking kinds under a row lock
// and returns the current status plus a closure that confirms the matching
// row.
func (s *paymentService) lockBooking(ctx context.Context, tx *gorm.DB, ref string) (models.BookingStatus, func() error, error) {
	if rb, err := s.bookingRepo.FindRoomBookingByRefForUpdate(ctx, tx, ref); err == nil {
		return rb.Status, func() error {
			return s.bookingRepo.MarkRoomBookingPaid(ctx, tx, rb.ID)
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	if sb, err := s.bookingRepo.FindServiceBookingByRefForUpdate(ctx, tx, ref); err == nil {
		return sb.Status, func() error {
			return s.bookingRepo.MarkServiceBookingPaid(ctx, tx, sb.ID)
		}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	return "", nil, ErrBookingNotFound
}
