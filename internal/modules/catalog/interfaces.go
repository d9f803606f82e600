package catalog

import (
	"context"

	"hotelback/internal/domain"
)

// Repository is the descriptive-data store: rooms, room types and the
// service catalogue.
type Repository interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	GetRoomByID(ctx context.Context, id int64) (*domain.Room, error)
	GetRoomTypes(ctx context.Context) ([]domain.RoomType, error)
	GetServices(ctx context.Context) ([]domain.Service, error)
	CreateRoom(ctx context.Context, room *domain.Room) error
	CreateRoomType(ctx context.Context, rt *domain.RoomType) error
	CreateService(ctx context.Context, s *domain.Service) error
}

// GuestStore manages the guest register.
type GuestStore interface {
	GetAll(ctx context.Context) ([]domain.Guest, error)
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	Create(ctx context.Context, g *domain.Guest) error
}
