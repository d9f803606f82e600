package analytics

import (
	"context"
	"testing"

	"hotelback/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var serviceCatalogue = []domain.Service{
	{ID: 1, Name: "Breakfast", Price: 2500, IsActive: true},
	{ID: 2, Name: "Airport transfer", Price: 8000, IsActive: true},
	{ID: 3, Name: "Laundry", Price: 1500, IsActive: true},
	{ID: 4, Name: "Spa", Price: 12000, IsActive: true},
}

func TestServices_RanksContiguouslyByTimesOrdered(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(3)

	p.catalog.On("GetServices", mock.Anything).Return(serviceCatalogue, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{
		saleFixture(1, 2, nil, 1, 8000, aug(1), domain.SalePaid),
		saleFixture(2, 1, nil, 3, 7500, aug(1), domain.SalePaid),
		saleFixture(3, 1, nil, 2, 5000, aug(2), domain.SalePaid),
		saleFixture(4, 3, nil, 1, 1500, aug(3), domain.SaleUnpaid),
	}, nil)

	report, err := s.Services(context.Background(), from, to)
	require.NoError(t, err)

	// Spa has zero orders and is dropped; ranks run 1..N with no gaps.
	require.Len(t, report.Services, 3)
	for i, svc := range report.Services {
		assert.Equal(t, i+1, svc.PopularityRank)
	}
	assert.Equal(t, "Breakfast", report.Services[0].ServiceName)
	assert.Equal(t, 5, report.Services[0].TimesOrdered)
	// Transfer and Laundry both have 1 order; the earlier-seen sale wins
	// the tie.
	assert.Equal(t, "Airport transfer", report.Services[1].ServiceName)
	assert.Equal(t, "Laundry", report.Services[2].ServiceName)

	assert.Equal(t, 7, report.TotalServicesOrdered)
	assert.InDelta(t, 22000.0, report.TotalServiceRevenue, 0.0001)
	assert.InDelta(t, 5500.0, report.AverageServiceValue, 0.0001)
}

func TestServices_DailySeriesCoversWholeRange(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(5)

	p.catalog.On("GetServices", mock.Anything).Return(serviceCatalogue, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{
		saleFixture(1, 1, nil, 2, 5000, aug(2), domain.SalePaid),
		saleFixture(2, 1, nil, 1, 2500, aug(2), domain.SalePaid),
		saleFixture(3, 2, nil, 1, 8000, aug(5), domain.SalePaid),
	}, nil)

	report, err := s.Services(context.Background(), from, to)
	require.NoError(t, err)

	require.Len(t, report.Daily, 5)
	assert.Equal(t, aug(1), report.Daily[0].Date)
	assert.Zero(t, report.Daily[0].OrderCount)
	assert.Equal(t, 3, report.Daily[1].OrderCount)
	assert.InDelta(t, 7500.0, report.Daily[1].Revenue, 0.0001)
	assert.Zero(t, report.Daily[2].OrderCount)
	assert.Equal(t, 1, report.Daily[4].OrderCount)
}

func TestServices_CancelledSalesExcludedEverywhere(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(2)

	p.catalog.On("GetServices", mock.Anything).Return(serviceCatalogue, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{
		saleFixture(1, 1, nil, 1, 2500, aug(1), domain.SalePaid),
		saleFixture(2, 3, nil, 5, 7500, aug(1), domain.SaleCancelled),
	}, nil)

	report, err := s.Services(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalServicesOrdered)
	assert.InDelta(t, 2500.0, report.TotalServiceRevenue, 0.0001)
	require.Len(t, report.Services, 1)
	assert.Equal(t, "Breakfast", report.Services[0].ServiceName)
	assert.Equal(t, 1, report.Daily[0].OrderCount)
}

func TestServices_EmptyRange(t *testing.T) {
	s, p := newTestService(t, aug(31))
	from, to := aug(1), aug(3)

	p.catalog.On("GetServices", mock.Anything).Return(serviceCatalogue, nil)
	p.sales.On("GetInRange", mock.Anything, from, to).Return([]domain.ServiceSale{}, nil)

	report, err := s.Services(context.Background(), from, to)
	require.NoError(t, err)

	assert.Zero(t, report.AverageServiceValue)
	assert.Empty(t, report.Services)
	assert.Len(t, report.Daily, 3)
}
