package repository

import (
	"context"
	"time"

	"hotelback/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GetInRange returns bookings whose planned dates overlap [from, to].
func (r *BookingRepository) GetInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	end := to.Add(24 * time.Hour)

	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		Where("check_in_date < ? AND check_out_date >= ?", end, from).
		Order("check_in_date").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}
