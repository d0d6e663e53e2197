package main

import (
	"context"
	"log"

	"github.com/Breezy-Reese/hotel/config"
	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"github.com/Breezy-Reese/hotel/pkg/database"
	"gorm.io/gorm"
)

// seeddata loads the starter catalog of rooms and services. It only fills
// empty tables, so re-running it is safe.
func main() {
	cfg := config.Load()
	db := database.NewPostgresDB(cfg.DSN())
	ctx := context.Background()

	seedRooms(ctx, db)
	seedServices(ctx, db)
}

func seedRooms(ctx context.Context, db *gorm.DB) {
	var count int64
	db.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Printf("rooms already seeded (%d rows)", count)
		return
	}

	rooms := []models.Room{
		{Name: "Deluxe Suite", Price: 25000},
		{Name: "Standard Room", Price: 15000},
		{Name: "Single Room", Price: 10000},
		{Name: "Double Room", Price: 18000},
		{Name: "Family Suite", Price: 30000},
		{Name: "Presidential Suite", Price: 50000},
		{Name: "Economy Room", Price: 1000},
		{Name: "Luxury Suite", Price: 40000},
		{Name: "Honeymoon Suite", Price: 35000},
		{Name: "Business Room", Price: 22000},
		{Name: "Ocean View Room", Price: 30000},
		{Name: "Garden View Room", Price: 20000},
		{Name: "Penthouse Suite", Price: 60000},
	}

	repo := repository.NewRoomRepository(db)
	for i := range rooms {
		if err := repo.Create(ctx, &rooms[i]); err != nil {
			log.Fatalf("seed room %q: %v", rooms[i].Name, err)
		}
	}
	log.Printf("seeded %d rooms", len(rooms))
}

func seedServices(ctx context.Context, db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.Printf("services already seeded (%d rows)", count)
		return
	}

	services := []models.Service{
		{Name: "Grilled Salmon", Category: "Restaurant", Price: 1200},
		{Name: "Beef Steak", Category: "Restaurant", Price: 1500},
		{Name: "Caesar Salad", Category: "Restaurant", Price: 800},
		{Name: "Pasta Primavera", Category: "Restaurant", Price: 900},
		{Name: "Chocolate Cake", Category: "Restaurant", Price: 600},
		{Name: "Fruit Smoothie", Category: "Restaurant", Price: 500},
		{Name: "Swedish Massage", Category: "Spa", Price: 2500},
		{Name: "Aromatherapy", Category: "Spa", Price: 2000},
		{Name: "Hot Stone Therapy", Category: "Spa", Price: 3000},
		{Name: "Facial Treatment", Category: "Spa", Price: 1800},
		{Name: "Treadmill Rental", Category: "Gym", Price: 500},
		{Name: "Dumbbells Rental", Category: "Gym", Price: 300},
		{Name: "Exercise Bike", Category: "Gym", Price: 400},
		{Name: "Rowing Machine", Category: "Gym", Price: 450},
		{Name: "Wedding Hall Booking", Category: "Event", Price: 20000},
		{Name: "Conference Room Booking", Category: "Event", Price: 15000},
		{Name: "Birthday Party Package", Category: "Event", Price: 12000},
		{Name: "Exhibition Hall Rental", Category: "Event", Price: 25000},
		{Name: "Pool Party (2 hrs)", Category: "Pool", Price: 5000},
		{Name: "Family Swim Session", Category: "Pool", Price: 3000},
		{Name: "Night Swim Event", Category: "Pool", Price: 7000},
		{Name: "Private Pool Rental", Category: "Pool", Price: 10000},
	}

	repo := repository.NewServiceRepository(db)
	for i := range services {
		if err := repo.Create(ctx, &services[i]); err != nil {
			log.Fatalf("seed service %q: %v", services[i].Name, err)
		}
	}
	log.Printf("seeded %d services", len(services))
}
