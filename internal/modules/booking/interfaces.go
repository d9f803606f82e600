package booking

import (
	"context"
	"time"

	"hotelback/internal/domain"
)

// BookingRepository persists planned bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// RoomProvider resolves a room with its type, which carries the base rate.
type RoomProvider interface {
	GetRoomByID(ctx context.Context, id int64) (*domain.Room, error)
}
