package repository

import (
	"context"

	"hotelback/internal/domain"

	"gorm.io/gorm"
)

// CatalogRepository serves the static descriptive data: rooms, room types
// and the service catalogue. None of it is range-filtered.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Preload("RoomType").Order("id").Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}

func (r *CatalogRepository) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).Preload("RoomType").First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *CatalogRepository) GetRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	var types []domain.RoomType
	tx := r.db.WithContext(ctx).Order("id").Find(&types)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return types, nil
}

func (r *CatalogRepository) GetServices(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	tx := r.db.WithContext(ctx).Order("id").Find(&services)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return services, nil
}

func (r *CatalogRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *CatalogRepository) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}
