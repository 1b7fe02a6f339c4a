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

type TransportService interface {
	Create(ctx context.Context, req request_models.CreateTransportRequest) (uuid.UUID, error)
	Update(ctx context.Context, req request_models.UpdateTransportRequest) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Transport, error)
	List(ctx context.Context) ([]db_models.Transport, error)
}

type transportService struct {
	repo repositories.TransportRepository
}

func NewTransportService(repo repositories.TransportRepository) TransportService {
	return &transportService{repo: repo}
}

func (s *transportService) Create(ctx context.Context, req request_models.CreateTransportRequest) (uuid.UUID, error) {
	transport := &db_models.Transport{
		Name:        req.Name,
		CostPerDay:  req.CostPerDay,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	id, err := s.repo.Create(ctx, transport)
	if err != nil {
		log.Printf("transport: create failed: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *transportService) Update(ctx context.Context, req request_models.UpdateTransportRequest) error {
	existing, err := s.repo.GetByID(ctx, req.ID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrTransportNotFound
	}

	existing.Name = req.Name
	existing.CostPerDay = req.CostPerDay
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL

	if err := s.repo.Update(ctx, existing); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *transportService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *transportService) GetByID(ctx context.Context, id string) (*db_models.Transport, error) {
	transport, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if transport == nil {
		return nil, utils.ErrTransportNotFound
	}
	return transport, nil
}

func (s *transportService) List(ctx context.Context) ([]db_models.Transport, error) {
	transports, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return transports, nil
}
