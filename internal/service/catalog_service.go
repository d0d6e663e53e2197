package service

import (
	"context"
	"errors"
	"time"

	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"gorm.io/gorm"
)

// RoomListing pairs a room with its derived status for the day of listing.
type RoomListing struct {
	Room   models.Room
	Status models.RoomStatus
}

type CatalogService interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	UpdateRoom(ctx context.Context, id uint, name string, price float64) (*models.Room, error)
	ListRooms(ctx context.Context, status *models.RoomStatus) ([]RoomListing, error)
	CreateService(ctx context.Context, service *models.Service) error
	UpdateService(ctx context.Context, id uint, name, category string, price float64) (*models.Service, error)
	ListServices(ctx context.Context, category *string) ([]models.Service, error)
}

type catalogService struct {
	roomRepo    repository.RoomRepository
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
}

func NewCatalogService(
	roomRepo repository.RoomRepository,
	serviceRepo repository.ServiceRepository,
	bookingRepo repository.BookingRepository,
) CatalogService {
	return &catalogService{
		roomRepo:    roomRepo,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *catalogService) CreateRoom(ctx context.Context, room *models.Room) error {
	return s.roomRepo.Create(ctx, room)
}

func (s *catalogService) UpdateRoom(ctx context.Context, id uint, name string, price float64) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if name != "" {
		room.Name = name
	}
	if price > 0 {
		room.Price = price
	}
	if err := s.roomRepo.Save(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ListRooms derives each room's status from the active bookings covering
// today; nothing is read from a stored flag.
func (s *catalogService) ListRooms(ctx context.Context, status *models.RoomStatus) ([]RoomListing, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	booked, err := s.bookingRepo.FindBookedRoomIDs(ctx, today)
	if err != nil {
		return nil, err
	}

	listings := make([]RoomListing, 0, len(rooms))
	for _, room := range rooms {
		st := models.RoomAvailable
		if booked[room.ID] {
			st = models.RoomBooked
		}
		if status != nil && st != *status {
			continue
		}
		listings = append(listings, RoomListing{Room: room, Status: st})
	}
	return listings, nil
}

func (s *catalogService) CreateService(ctx context.Context, service *models.Service) error {
	return s.serviceRepo.Create(ctx, service)
}

func (s *catalogService) UpdateService(ctx context.Context, id uint, name, category string, price float64) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if name != "" {
		service.Name = name
	}
	if category != "" {
		service.Category = category
	}
	if price > 0 {
		service.Price = price
	}
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *catalogService) ListServices(ctx context.Context, category *string) ([]models.Service, error) {
	return s.serviceRepo.FindAll(ctx, category)
}
