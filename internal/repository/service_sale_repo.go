package repository

import (
	"context"
	"time"

	"hotelback/internal/domain"

	"gorm.io/gorm"
)

type ServiceSaleRepository struct {
	db *gorm.DB
}

func NewServiceSaleRepository(db *gorm.DB) *ServiceSaleRepository {
	return &ServiceSaleRepository{db: db}
}

// GetInRange returns all sales whose sale date falls in [from, to],
// cancelled ones included. Exclusion is the aggregators' job, so every
// consumer applies the same predicate instead of each query re-encoding it.
func (r *ServiceSaleRepository) GetInRange(ctx context.Context, from, to time.Time) ([]domain.ServiceSale, error) {
	end := to.Add(24 * time.Hour)

	var sales []domain.ServiceSale
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Where("sale_date >= ? AND sale_date < ?", from, end).
		Order("sale_date").
		Find(&sales)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return sales, nil
}

func (r *ServiceSaleRepository) GetByStayID(ctx context.Context, stayID int64) ([]domain.ServiceSale, error) {
	var sales []domain.ServiceSale
	tx := r.db.WithContext(ctx).
		Preload("Service").
		Where("stay_id = ?", stayID).
		Order("sale_date").
		Find(&sales)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return sales, nil
}

func (r *ServiceSaleRepository) Create(ctx context.Context, s *domain.ServiceSale) error {
	return r.db.WithContext(ctx).Create(s).Error
}
