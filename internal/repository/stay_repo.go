package repository

import (
	"context"
	"errors"
	"time"

	"hotelback/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrDuplicateMainGuest = errors.New("stay already has a main guest")

type StayRepository struct {
	db *gorm.DB
}

func NewStayRepository(db *gorm.DB) *StayRepository {
	return &StayRepository{db: db}
}

// GetInRange returns stays whose occupancy overlaps [from, to] (inclusive
// calendar days, UTC). The full graph the aggregators need is preloaded:
// booking -> room -> room type, plus the guest roster. Still-resident stays
// (NULL checkout) always overlap the tail of the range.
func (r *StayRepository) GetInRange(ctx context.Context, from, to time.Time) ([]domain.Stay, error) {
	end := to.Add(24 * time.Hour)

	var stays []domain.Stay
	tx := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Guest").
		Preload("Booking.Room").
		Preload("Booking.Room.RoomType").
		Preload("Guests").
		Preload("Guests.Guest").
		Where("actual_check_in_date < ? AND (actual_check_out_date IS NULL OR actual_check_out_date >= ?)", end, from).
		Order("actual_check_in_date").
		Find(&stays)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return stays, nil
}

func (r *StayRepository) GetByID(ctx context.Context, id int64) (*domain.Stay, error) {
	var stay domain.Stay
	tx := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Guest").
		Preload("Booking.Room").
		Preload("Booking.Room.RoomType").
		Preload("Guests").
		Preload("Guests.Guest").
		First(&stay, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &stay, nil
}

func (r *StayRepository) Create(ctx context.Context, s *domain.Stay) error {
	tx := r.db.WithContext(ctx).Create(s)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_one_main_guest" {
				return ErrDuplicateMainGuest
			}
		}
		return tx.Error
	}
	return nil
}
