package analytics

import (
	"context"
	"time"

	"hotelback/internal/domain"
)

// StayProvider returns stays overlapping a date range with their booking,
// room, room type and guest roster resolved. Aggregators never follow lazy
// links; the provider hands over the whole graph.
type StayProvider interface {
	GetInRange(ctx context.Context, from, to time.Time) ([]domain.Stay, error)
}

// BookingProvider returns planned bookings overlapping a date range.
type BookingProvider interface {
	GetInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// SaleProvider returns service sales in a date range, cancelled included.
type SaleProvider interface {
	GetInRange(ctx context.Context, from, to time.Time) ([]domain.ServiceSale, error)
}

// GuestProvider returns the full guest population.
type GuestProvider interface {
	GetAll(ctx context.Context) ([]domain.Guest, error)
}

// CatalogProvider returns the static room and service catalogue.
type CatalogProvider interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	GetServices(ctx context.Context) ([]domain.Service, error)
}
