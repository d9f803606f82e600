package analytics

import (
	"time"

	"hotelback/internal/domain"
)

// Service builds the four reports. It is read-only: every call pulls a
// fresh snapshot through the providers and returns a newly allocated
// report, so concurrent requests never share state.
type Service struct {
	stays    StayProvider
	bookings BookingProvider
	sales    SaleProvider
	guests   GuestProvider
	catalog  CatalogProvider

	// now supplies the provisional checkout for still-resident stays.
	now func() time.Time
}

func NewService(
	stays StayProvider,
	bookings BookingProvider,
	sales SaleProvider,
	guests GuestProvider,
	catalog CatalogProvider,
) *Service {
	return &Service{
		stays:    stays,
		bookings: bookings,
		sales:    sales,
		guests:   guests,
		catalog:  catalog,
		now:      time.Now,
	}
}

// activeSales drops cancelled sales. Every aggregator filters through this
// before any sum, count or average.
func activeSales(sales []domain.ServiceSale) []domain.ServiceSale {
	out := make([]domain.ServiceSale, 0, len(sales))
	for _, sale := range sales {
		if sale.Cancelled() {
			continue
		}
		out = append(out, sale)
	}
	return out
}

// daysInclusive counts calendar days in [from, to], both ends included.
func daysInclusive(from, to time.Time) int {
	d := int(to.Sub(from).Hours()/24) + 1
	if d < 0 {
		return 0
	}
	return d
}

// safeDiv yields 0 on an empty denominator instead of NaN/Inf.
func safeDiv(num float64, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
