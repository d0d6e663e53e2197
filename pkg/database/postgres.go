package database

import (
	"log"
	"time"

	"github.com/Breezy-Reese/hotel/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate runs AutoMigrate plus the constraints GORM cannot express:
// a DB-level backstop against overlapping active room bookings, mirroring
// the in-transaction check.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Room{},
		&models.Service{},
		&models.Guest{},
		&models.RoomBooking{},
		&models.ServiceBooking{},
		&models.Payment{},
		&models.Admin{},
	)
	if err != nil {
		return err
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
		DO $$ BEGIN
			ALTER TABLE room_bookings
			ADD CONSTRAINT room_bookings_no_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				daterange(checkin::date, checkout::date) WITH &&
			) WHERE (status <> 'cancelled');
		EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL;
		END $$
	`)

	return nil
}
