package export

import (
	"context"
	"time"

	"hotelback/internal/modules/analytics"
	"hotelback/internal/modules/invoice"
)

// ReportSource is the computed-report contract the exporter renders from.
// The exporter never reaches back into the source entities.
type ReportSource interface {
	Revenue(ctx context.Context, from, to time.Time) (*analytics.RevenueReport, error)
	Occupancy(ctx context.Context, from, to time.Time) (*analytics.OccupancyReport, error)
	Services(ctx context.Context, from, to time.Time) (*analytics.ServicesReport, error)
	Guests(ctx context.Context, from, to time.Time) (*analytics.GuestReport, error)
}

// InvoiceSource builds the per-stay invoice document.
type InvoiceSource interface {
	Build(ctx context.Context, stayID int64) (*invoice.Invoice, error)
}
