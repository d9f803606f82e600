package booking

import (
	"context"
	"math"
	"time"

	"hotelback/internal/domain"
	"hotelback/internal/pkg/validator"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomProvider
}

func NewService(bookings BookingRepository, rooms RoomProvider) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// QuoteTotalPrice prices a planned booking: nights times the room type's
// base rate. Same-day checkout still bills one night.
func (s *Service) QuoteTotalPrice(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*Quote, error) {
	if checkOut.Before(checkIn) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, ErrRoomInactive
	}

	rate := 0.0
	if room.RoomType != nil {
		rate = room.RoomType.BaseRate
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	total := float64(nights) * rate
	total = math.Round(total*100) / 100

	return &Quote{
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		DailyRate:  rate,
		TotalPrice: total,
	}, nil
}

// CreateBooking persists a pending booking with the quoted total. This is
// the quoted price only; realized revenue is recorded on the stay at
// checkout and stays independent of it.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	quote, err := s.QuoteTotalPrice(ctx, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		GuestID:      req.GuestID,
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		TotalPrice:   quote.TotalPrice,
		Status:       domain.BookingPending,
		Notes:        req.Notes,
	}
	if errs := validator.Validate(b); errs != nil {
		return nil, ErrValidation
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
