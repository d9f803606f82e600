package analytics

import (
	"context"
	"testing"

	"hotelback/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRevenue_AugustScenario(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(31)

	checkout := aug(7)
	stdRoom := room(1, "101", &typeStandard)
	stay := stayFixture(1, stdRoom, 51000, aug(3), &checkout)
	stayID := stay.ID

	p.stays.On("GetInRange", mock.Anything, from, to).Return([]domain.Stay{stay}, nil)
	p.bookings.On("GetInRange", mock.Anything, from, to).Return([]domain.Booking{}, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{
		saleFixture(1, 1, &stayID, 1, 1000, aug(4), domain.SalePaid),
	}, nil)

	report, err := s.Revenue(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, 51000.0, report.AccommodationRevenue)
	assert.Equal(t, 1000.0, report.ServiceRevenue)
	assert.Equal(t, 52000.0, report.TotalRevenue)
	assert.InDelta(t, 5200.0, report.TaxCollected, 0.0001)
	assert.Equal(t, 1, report.StaysCount)
	assert.InDelta(t, 52000.0, report.AverageStayValue, 0.0001)
}

func TestRevenue_CancelledSaleChangesNothing(t *testing.T) {
	from, to := aug(1), aug(31)
	checkout := aug(7)
	stdRoom := room(1, "101", &typeStandard)
	stay := stayFixture(1, stdRoom, 51000, aug(3), &checkout)
	stayID := stay.ID

	baseSales := []domain.ServiceSale{
		saleFixture(1, 1, &stayID, 1, 1000, aug(4), domain.SalePaid),
	}
	withCancelled := append(append([]domain.ServiceSale{}, baseSales...),
		saleFixture(2, 2, &stayID, 3, 9999, aug(5), domain.SaleCancelled))

	build := func(sales []domain.ServiceSale) *RevenueReport {
		s, p := newTestService(t, aug(31))
		p.stays.On("GetInRange", mock.Anything, from, to).Return([]domain.Stay{stay}, nil)
		p.bookings.On("GetInRange", mock.Anything, from, to).Return([]domain.Booking{}, nil)
		p.sales.On("GetInRange", mock.Anything, from, to).Return(sales, nil)
		report, err := s.Revenue(context.Background(), from, to)
		require.NoError(t, err)
		return report
	}

	assert.Equal(t, build(baseSales), build(withCancelled))
}

func TestRevenue_RoomTypeBreakdownReconciles(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(31)

	out1, out2, out3 := aug(5), aug(12), aug(20)
	stdRoom := room(1, "101", &typeStandard)
	stdRoom2 := room(2, "102", &typeStandard)
	dlxRoom := room(3, "201", &typeDeluxe)

	stays := []domain.Stay{
		stayFixture(1, stdRoom, 30000, aug(2), &out1),
		stayFixture(2, stdRoom2, 45000, aug(8), &out2),
		stayFixture(3, dlxRoom, 81000, aug(15), &out3),
	}
	stay1, stay3 := stays[0].ID, stays[2].ID

	p.stays.On("GetInRange", mock.Anything, from, to).Return(stays, nil)
	p.bookings.On("GetInRange", mock.Anything, from, to).Return([]domain.Booking{}, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{
		saleFixture(1, 1, &stay1, 2, 5000, aug(3), domain.SalePaid),
		saleFixture(2, 2, &stay3, 1, 8000, aug(16), domain.SaleUnpaid),
		saleFixture(3, 3, nil, 1, 700, aug(16), domain.SalePaid), // not tied to a stay
	}, nil)

	report, err := s.Revenue(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, report.ByRoomType, 2)

	var accSum, svcSum float64
	for _, rt := range report.ByRoomType {
		accSum += rt.AccommodationRevenue
		svcSum += rt.ServiceRevenue
	}
	assert.InDelta(t, report.AccommodationRevenue, accSum, 0.0001)

	std := report.ByRoomType[0]
	assert.Equal(t, typeStandard.ID, std.RoomTypeID)
	assert.Equal(t, 2, std.StaysCount)
	assert.InDelta(t, 75000.0, std.AccommodationRevenue, 0.0001)
	assert.InDelta(t, 5000.0, std.ServiceRevenue, 0.0001)
	assert.InDelta(t, 40000.0, std.AverageRate, 0.0001)

	dlx := report.ByRoomType[1]
	assert.Equal(t, typeDeluxe.ID, dlx.RoomTypeID)
	assert.InDelta(t, 8000.0, dlx.ServiceRevenue, 0.0001)
}

func TestRevenue_PlannedSeparateFromActual(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(31)

	checkout := aug(7)
	stdRoom := room(1, "101", &typeStandard)
	stay := stayFixture(1, stdRoom, 51000, aug(3), &checkout)

	p.stays.On("GetInRange", mock.Anything, from, to).Return([]domain.Stay{stay}, nil)
	p.bookings.On("GetInRange", mock.Anything, from, to).Return([]domain.Booking{
		{ID: 1, TotalPrice: 60000, Status: domain.BookingConfirmed},
		{ID: 2, TotalPrice: 99999, Status: domain.BookingCancelled},
	}, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{}, nil)

	report, err := s.Revenue(context.Background(), from, to)
	require.NoError(t, err)

	// Quoted booking totals are reported on their own; cancelled bookings
	// drop out entirely.
	assert.Equal(t, 60000.0, report.PlannedRevenue)
	assert.Equal(t, 51000.0, report.TotalRevenue)
}

func TestRevenue_EmptyRangeIsZeroed(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(31)

	p.stays.On("GetInRange", mock.Anything, from, to).Return([]domain.Stay{}, nil)
	p.bookings.On("GetInRange", mock.Anything, from, to).Return([]domain.Booking{}, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{}, nil)

	report, err := s.Revenue(context.Background(), from, to)
	require.NoError(t, err)

	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.AverageStayValue)
	assert.Empty(t, report.ByRoomType)
}
