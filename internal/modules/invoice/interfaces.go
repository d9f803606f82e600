package invoice

import (
	"context"

	"hotelback/internal/domain"
)

// StayProvider resolves one stay with its booking, room, room type and
// guest roster loaded.
type StayProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Stay, error)
}

// SaleProvider returns every service sale linked to a stay, cancelled
// included; the builder applies the exclusion itself.
type SaleProvider interface {
	GetByStayID(ctx context.Context, stayID int64) ([]domain.ServiceSale, error)
}
