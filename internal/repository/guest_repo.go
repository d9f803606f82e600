package repository

import (
	"context"

	"hotelback/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) GetAll(ctx context.Context) ([]domain.Guest, error) {
	var guests []domain.Guest
	tx := r.db.WithContext(ctx).Order("id").Find(&guests)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return guests, nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var g domain.Guest
	tx := r.db.WithContext(ctx).First(&g, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &g, nil
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}
