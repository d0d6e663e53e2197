package repository

import (
	"context"
	"time"

	"github.com/Breezy-Reese/hotel/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	CreateRoomBooking(ctx context.Context, tx *gorm.DB, booking *models.RoomBooking) error
	CreateServiceBooking(ctx context.Context, tx *gorm.DB, booking *models.ServiceBooking) error

	FindRoomBookingByID(ctx context.Context, id uint) (*models.RoomBooking, error)
	FindServiceBookingByID(ctx context.Context, id uint) (*models.ServiceBooking, error)
	FindRoomBookingByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.RoomBooking, error)
	FindServiceBookingByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.ServiceBooking, error)
	FindRoomBookingByRefForUpdate(ctx context.Context, tx *gorm.DB, ref string) (*models.RoomBooking, error)
	FindServiceBookingByRefForUpdate(ctx context.Context, tx *gorm.DB, ref string) (*models.ServiceBooking, error)

	// FindActiveByRoom returns the non-cancelled bookings holding the room,
	// read under the caller's transaction so the overlap decision sees a
	// stable snapshot.
	FindActiveByRoom(ctx context.Context, tx *gorm.DB, roomID uint) ([]models.RoomBooking, error)
	// FindBookedRoomIDs returns ids of rooms with an active booking covering
	// the given day; room status is derived from it.
	FindBookedRoomIDs(ctx context.Context, on time.Time) (map[uint]bool, error)

	ListRoomBookings(ctx context.Context) ([]models.RoomBooking, error)
	ListServiceBookings(ctx context.Context) ([]models.ServiceBooking, error)
	ListRoomBookingsByGuest(ctx context.Context, guestID uint) ([]models.RoomBooking, error)
	ListServiceBookingsByGuest(ctx context.Context, guestID uint) ([]models.ServiceBooking, error)

	UpdateRoomBookingStatus(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error
	UpdateServiceBookingStatus(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error
	MarkRoomBookingPaid(ctx context.Context, tx *gorm.DB, id uint) error
	MarkServiceBookingPaid(ctx context.Context, tx *gorm.DB, id uint) error

	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) CreateRoomBooking(ctx context.Context, tx *gorm.DB, booking *models.RoomBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) CreateServiceBooking(ctx context.Context, tx *gorm.DB, booking *models.ServiceBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindRoomBookingByID(ctx context.Context, id uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Guest").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindServiceBookingByID(ctx context.Context, id uint) (*models.ServiceBooking, error) {
	var booking models.ServiceBooking
	err := r.db.WithContext(ctx).
		Preload("Service").Preload("Guest").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindRoomBookingByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindServiceBookingByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.ServiceBooking, error) {
	var booking models.ServiceBooking
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindRoomBookingByRefForUpdate(ctx context.Context, tx *gorm.DB, ref string) (*models.RoomBooking, error) {
	var booking models.RoomBooking
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("ref = ?", ref).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindServiceBookingByRefForUpdate(ctx context.Context, tx *gorm.DB, ref string) (*models.ServiceBooking, error) {
	var booking models.ServiceBooking
	err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("ref = ?", ref).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindActiveByRoom(ctx context.Context, tx *gorm.DB, roomID uint) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	err := tx.WithContext(ctx).
		Where("room_id = ? AND status <> ?", roomID, models.StatusCancelled).
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindBookedRoomIDs(ctx context.Context, on time.Time) (map[uint]bool, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.RoomBooking{}).
		Where("status <> ? AND checkin <= ? AND checkout > ?", models.StatusCancelled, on, on).
		Distinct().
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, err
	}
	booked := make(map[uint]bool, len(ids))
	for _, id := range ids {
		booked[id] = true
	}
	return booked, nil
}

func (r *bookingRepository) ListRoomBookings(ctx context.Context) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	err := r.db.WithContext(ctx).
		Preload("Room").Preload("Guest").
		Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListServiceBookings(ctx context.Context) ([]models.ServiceBooking, error) {
	var bookings []models.ServiceBooking
	err := r.db.WithContext(ctx).
		Preload("Service").Preload("Guest").
		Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListRoomBookingsByGuest(ctx context.Context, guestID uint) ([]models.RoomBooking, error) {
	var bookings []models.RoomBooking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("guest_id = ?", guestID).
		Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListServiceBookingsByGuest(ctx context.Context, guestID uint) ([]models.ServiceBooking, error) {
	var bookings []models.ServiceBooking
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("guest_id = ?", guestID).
		Order("id DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateRoomBookingStatus(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.RoomBooking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) UpdateServiceBookingStatus(ctx context.Context, tx *gorm.DB, id uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.ServiceBooking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) MarkRoomBookingPaid(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).
		Model(&models.RoomBooking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         models.StatusConfirmed,
			"payment_status": models.PaymentPaid,
		}).Error
}

func (r *bookingRepository) MarkServiceBookingPaid(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).
		Model(&models.ServiceBooking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         models.StatusConfirmed,
			"payment_status": models.PaymentPaid,
		}).Error
}
