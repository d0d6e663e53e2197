package repository

import (
	"context"

	"github.com/Breezy-Reese/hotel/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	FindByBookingRef(ctx context.Context, tx *gorm.DB, ref string) (*models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByBookingRef(ctx context.Context, tx *gorm.DB, ref string) (*models.Payment, error) {
	var payment models.Payment
	if err := tx.WithContext(ctx).Where("booking_ref = ?", ref).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
