package booking

import (
	"context"
	"testing"
	"time"

	"hotelback/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomProvider struct {
	mock.Mock
}

func (m *MockRoomProvider) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC)
}

func activeRoom(rate float64) *domain.Room {
	return &domain.Room{
		ID:       1,
		Number:   "101",
		IsActive: true,
		RoomType: &domain.RoomType{ID: 1, Name: "Standard", BaseRate: rate},
	}
}

func TestQuoteTotalPrice_NightsTimesBaseRate(t *testing.T) {
	rooms := new(MockRoomProvider)
	s := NewService(new(MockBookingRepository), rooms)

	rooms.On("GetRoomByID", mock.Anything, int64(1)).Return(activeRoom(12750.50), nil)

	quote, err := s.QuoteTotalPrice(context.Background(), 1, day(3), day(7))
	require.NoError(t, err)

	assert.Equal(t, 4, quote.Nights)
	assert.InDelta(t, 12750.50, quote.DailyRate, 0.0001)
	assert.InDelta(t, 51002.0, quote.TotalPrice, 0.0001)
}

func TestQuoteTotalPrice_RoundsToTwoDecimals(t *testing.T) {
	rooms := new(MockRoomProvider)
	s := NewService(new(MockBookingRepository), rooms)

	rooms.On("GetRoomByID", mock.Anything, int64(1)).Return(activeRoom(3333.333), nil)

	quote, err := s.QuoteTotalPrice(context.Background(), 1, day(1), day(4))
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, quote.TotalPrice, 0.0001)
}

func TestQuoteTotalPrice_SameDayBillsOneNight(t *testing.T) {
	rooms := new(MockRoomProvider)
	s := NewService(new(MockBookingRepository), rooms)

	rooms.On("GetRoomByID", mock.Anything, int64(1)).Return(activeRoom(15000), nil)

	quote, err := s.QuoteTotalPrice(context.Background(), 1, day(3), day(3))
	require.NoError(t, err)

	assert.Equal(t, 1, quote.Nights)
	assert.InDelta(t, 15000.0, quote.TotalPrice, 0.0001)
}

func TestQuoteTotalPrice_CheckOutBeforeCheckIn(t *testing.T) {
	rooms := new(MockRoomProvider)
	s := NewService(new(MockBookingRepository), rooms)

	_, err := s.QuoteTotalPrice(context.Background(), 1, day(7), day(3))
	assert.ErrorIs(t, err, ErrValidation)
	rooms.AssertNotCalled(t, "GetRoomByID")
}

func TestQuoteTotalPrice_InactiveRoom(t *testing.T) {
	rooms := new(MockRoomProvider)
	s := NewService(new(MockBookingRepository), rooms)

	rm := activeRoom(15000)
	rm.IsActive = false
	rooms.On("GetRoomByID", mock.Anything, int64(1)).Return(rm, nil)

	_, err := s.QuoteTotalPrice(context.Background(), 1, day(3), day(5))
	assert.ErrorIs(t, err, ErrRoomInactive)
}

func TestCreateBooking_PersistsPendingWithQuotedTotal(t *testing.T) {
	repo := new(MockBookingRepository)
	rooms := new(MockRoomProvider)
	s := NewService(repo, rooms)

	rooms.On("GetRoomByID", mock.Anything, int64(1)).Return(activeRoom(15000), nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := s.CreateBooking(context.Background(), CreateBookingRequest{
		GuestID:      5,
		RoomID:       1,
		CheckInDate:  day(3),
		CheckOutDate: day(7),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingPending, b.Status)
	assert.InDelta(t, 60000.0, b.TotalPrice, 0.0001)
	repo.AssertExpectations(t)
}
