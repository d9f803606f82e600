package catalog

import (
	"context"
	"errors"

	"hotelback/internal/domain"
	"hotelback/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	repo   Repository
	guests GuestStore
}

func NewService(repo Repository, guests GuestStore) *Service {
	return &Service{repo: repo, guests: guests}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.repo.GetRooms(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.repo.GetRoomTypes(ctx)
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.repo.GetServices(ctx)
}

func (s *Service) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	return s.guests.GetAll(ctx)
}

func (s *Service) GetGuest(ctx context.Context, id int64) (*domain.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// CreateRoom registers a room. New rooms default to active so they count
// toward available room-nights from the day they are added.
func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	room := &domain.Room{
		Number:     req.Number,
		Floor:      req.Floor,
		RoomTypeID: req.RoomTypeID,
		IsActive:   active,
	}
	if errs := validator.Validate(room); errs != nil {
		return nil, ErrValidation
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	rt := &domain.RoomType{
		Name:        req.Name,
		Description: req.Description,
		BaseRate:    req.BaseRate,
		Capacity:    req.Capacity,
	}
	if errs := validator.Validate(rt); errs != nil {
		return nil, ErrValidation
	}
	if err := s.repo.CreateRoomType(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		TaxPercent:  req.TaxPercent,
		IsActive:    active,
	}
	if errs := validator.Validate(svc); errs != nil {
		return nil, ErrValidation
	}
	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) CreateGuest(ctx context.Context, req CreateGuestRequest) (*domain.Guest, error) {
	g := &domain.Guest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Citizenship: req.Citizenship,
	}
	if errs := validator.Validate(g); errs != nil {
		return nil, ErrValidation
	}
	if err := s.guests.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
