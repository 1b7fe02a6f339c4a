package services

import (
	"context"
	"log"

	"safar/internal/models/db_models"
	"safar/internal/models/request_models"
	"safar/internal/repositories"
	"safar/pkg/utils"

	"github.com/google/uuid"
)

type HotelService interface {
	Create(ctx context.Context, req request_models.CreateHotelRequest) (uuid.UUID, error)
	Update(ctx context.Context, req request_models.UpdateHotelRequest) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Hotel, error)
	List(ctx context.Context) ([]db_models.Hotel, error)
}

type hotelService struct {
	repo repositories.HotelRepository
}

func NewHotelService(repo repositories.HotelRepository) HotelService {
	return &hotelService{repo: repo}
}

func (s *hotelService) Create(ctx context.Context, req request_models.CreateHotelRequest) (uuid.UUID, error) {
	hotel := &db_models.Hotel{
		Name:         req.Name,
		Stars:        req.Stars,
		CostPerNight: req.CostPerNight,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	}
	id, err := s.repo.Create(ctx, hotel)
	if err != nil {
		log.Printf("hotel: create failed: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *hotelService) Update(ctx context.Context, req request_models.UpdateHotelRequest) error {
	existing, err := s.repo.GetByID(ctx, req.ID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrHotelNotFound
	}

	existing.Name = req.Name
	existing.Stars = req.Stars
	existing.CostPerNight = req.CostPerNight
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL

	if err := s.repo.Update(ctx, existing); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *hotelService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *hotelService) GetByID(ctx context.Context, id string) (*db_models.Hotel, error) {
	hotel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}
	return hotel, nil
}

func (s *hotelService) List(ctx context.Context) ([]db_models.Hotel, error) {
	hotels, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return hotels, nil
}
