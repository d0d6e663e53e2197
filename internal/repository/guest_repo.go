package repository

import (
	"context"

	"github.com/Breezy-Reese/hotel/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GuestRepository interface {
	UpsertByEmail(ctx context.Context, tx *gorm.DB, guest *models.Guest) error
	FindByEmail(ctx context.Context, email string) (*models.Guest, error)
	FindAll(ctx context.Context) ([]models.Guest, error)
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

// UpsertByEmail inserts the guest or, on email conflict, refreshes name and
// phone. Postgres RETURNING fills in the surviving row's ID either way.
func (r *guestRepository) UpsertByEmail(ctx context.Context, tx *gorm.DB, guest *models.Guest) error {
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "updated_at"}),
	}).Create(guest).Error
}

func (r *guestRepository) FindByEmail(ctx context.Context, email string) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}
