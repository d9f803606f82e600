package analytics

import (
	"context"
	"testing"
	"time"

	"hotelback/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock providers

type MockStayProvider struct {
	mock.Mock
}

func (m *MockStayProvider) GetInRange(ctx context.Context, from, to time.Time) ([]domain.Stay, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stay), args.Error(1)
}

type MockBookingProvider struct {
	mock.Mock
}

func (m *MockBookingProvider) GetInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockSaleProvider struct {
	mock.Mock
}

func (m *MockSaleProvider) GetInRange(ctx context.Context, from, to time.Time) ([]domain.ServiceSale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceSale), args.Error(1)
}

type MockGuestProvider struct {
	mock.Mock
}

func (m *MockGuestProvider) GetAll(ctx context.Context) ([]domain.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) GetRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockCatalogProvider) GetServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

// Fixtures

func aug(day int) time.Time {
	return time.Date(2025, 8, day, 0, 0, 0, 0, time.UTC)
}

var (
	typeStandard = domain.RoomType{ID: 1, Name: "Standard", BaseRate: 15000, Capacity: 2}
	typeDeluxe   = domain.RoomType{ID: 2, Name: "Deluxe", BaseRate: 27000, Capacity: 3}
)

func room(id int64, number string, rt *domain.RoomType) domain.Room {
	return domain.Room{ID: id, Number: number, RoomTypeID: rt.ID, IsActive: true, RoomType: rt}
}

// stayFixture builds a stay with its booking/room/room type graph resolved
// the way the repository hands it over.
func stayFixture(id int64, rm domain.Room, amount float64, checkIn time.Time, checkOut *time.Time, guests ...domain.StayGuest) domain.Stay {
	roomCopy := rm
	return domain.Stay{
		ID:                 id,
		BookingID:          id,
		ActualCheckInDate:  checkIn,
		ActualCheckOutDate: checkOut,
		TotalAmount:        amount,
		TaxPercent:         20,
		PaymentStatus:      domain.SalePaid,
		Booking: &domain.Booking{
			ID:     id,
			RoomID: rm.ID,
			Room:   &roomCopy,
		},
		Guests: guests,
	}
}

func saleFixture(id, serviceID int64, stayID *int64, quantity int, total float64, date time.Time, status domain.SalePaymentStatus) domain.ServiceSale {
	return domain.ServiceSale{
		ID:            id,
		ServiceID:     serviceID,
		StayID:        stayID,
		Quantity:      quantity,
		TotalPrice:    total,
		SaleDate:      date,
		PaymentStatus: status,
	}
}

type testProviders struct {
	stays    *MockStayProvider
	bookings *MockBookingProvider
	sales    *MockSaleProvider
	guests   *MockGuestProvider
	catalog  *MockCatalogProvider
}

func newTestService(t *testing.T, now time.Time) (*Service, *testProviders) {
	t.Helper()
	p := &testProviders{
		stays:    new(MockStayProvider),
		bookings: new(MockBookingProvider),
		sales:    new(MockSaleProvider),
		guests:   new(MockGuestProvider),
		catalog:  new(MockCatalogProvider),
	}
	s := NewService(p.stays, p.bookings, p.sales, p.guests, p.catalog)
	s.now = func() time.Time { return now }
	return s, p
}
