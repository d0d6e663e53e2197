//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"github.com/Breezy-Reese/hotel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService() service.PaymentService {
	bookingRepo := repository.NewBookingRepository(testDB)
	paymentRepo := repository.NewPaymentRepository(testDB)
	return service.NewPaymentService(paymentRepo, bookingRepo, nil)
}

func bookTestRoom(t *testing.T) *models.RoomBooking {
	t.Helper()
	room := createTestRoom(t, "Deluxe 101", 1500)
	booking, err := newBookingService().BookRoom(context.Background(), service.BookRoomInput{
		RoomID: room.ID,
		Guest:  guest(1),
		Stay:   mustStay(t, "2025-09-01", "2025-09-05"),
	})
	require.NoError(t, err)
	return booking
}

func TestRecordPayment_ConfirmsBooking(t *testing.T) {
	cleanTables()
	booking := bookTestRoom(t)
	svc := newPaymentService()

	payment, err := svc.RecordPayment(context.Background(), booking.Ref, 6000, "card")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, payment.Status)
	assert.Equal(t, booking.Ref, payment.BookingRef)

	var stored models.RoomBooking
	require.NoError(t, testDB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestRecordPayment_SecondAttemptRejected(t *testing.T) {
	cleanTables()
	booking := bookTestRoom(t)
	svc := newPaymentService()

	_, err := svc.RecordPayment(context.Background(), booking.Ref, 6000, "card")
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), booking.Ref, 6000, "card")
	assert.ErrorIs(t, err, service.ErrAlreadyPaid)

	var count int64
	testDB.Model(&models.Payment{}).Where("booking_ref = ?", booking.Ref).Count(&count)
	assert.Equal(t, int64(1), count, "retries must not create a second payment")
}

// Concurrent retries against the same booking: the row lock serializes them
// and exactly one payment lands.
func TestRecordPayment_ConcurrentRetries(t *testing.T) {
	cleanTables()
	booking := bookTestRoom(t)
	svc := newPaymentService()

	attempts := 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RecordPayment(context.Background(), booking.Ref, 6000, "card")
			if err == nil {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successCount)

	var count int64
	testDB.Model(&models.Payment{}).Where("booking_ref = ?", booking.Ref).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordPayment_CancelledBookingRejected(t *testing.T) {
	cleanTables()
	booking := bookTestRoom(t)

	_, err := newBookingService().TransitionRoomBooking(context.Background(), booking.ID, models.StatusCancelled)
	require.NoError(t, err)

	_, err = newPaymentService().RecordPayment(context.Background(), booking.Ref, 6000, "card")
	assert.ErrorIs(t, err, service.ErrBookingCancelled)

	var count int64
	testDB.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestRecordPayment_UnknownRef(t *testing.T) {
	cleanTables()

	_, err := newPaymentService().RecordPayment(context.Background(), "no-such-ref", 6000, "card")
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}

func TestRecordPayment_ServiceBooking(t *testing.T) {
	cleanTables()
	spa := createTestService(t, "Thai Massage", "Spa", 800)

	booking, err := newBookingService().BookService(context.Background(), service.BookServiceInput{
		ServiceID:   spa.ID,
		Guest:       guest(1),
		BookingDate: mustStay(t, "2025-09-10", "2025-09-11").Checkin,
	})
	require.NoError(t, err)

	payment, err := newPaymentService().RecordPayment(context.Background(), booking.Ref, 800, "")
	require.NoError(t, err)
	assert.Equal(t, "offline", payment.Method, "empty method falls back to offline")

	var stored models.ServiceBooking
	require.NoError(t, testDB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	cleanTables()
	booking := bookTestRoom(t)

	_, err := newPaymentService().RecordPayment(context.Background(), booking.Ref, 0, "card")
	assert.ErrorIs(t, err, service.ErrInvalidAmount)

	_, err = newPaymentService().RecordPayment(context.Background(), booking.Ref, -100, "card")
	assert.ErrorIs(t, err, service.ErrInvalidAmount)
}
