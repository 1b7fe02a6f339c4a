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

type AttractionService interface {
	Create(ctx context.Context, req request_models.CreateAttractionRequest) (uuid.UUID, error)
	Update(ctx context.Context, req request_models.UpdateAttractionRequest) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Attraction, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error)
	ListByEmirates(ctx context.Context, emirates []string) ([]db_models.Attraction, error)
	SearchByName(ctx context.Context, name string, page, pageSize int) ([]db_models.Attraction, error)
}

type attractionService struct {
	repo repositories.AttractionRepository
}

func NewAttractionService(repo repositories.AttractionRepository) AttractionService {
	return &attractionService{repo: repo}
}

func (s *attractionService) Create(ctx context.Context, req request_models.CreateAttractionRequest) (uuid.UUID, error) {
	attraction := &db_models.Attraction{
		Name:        req.Name,
		Emirate:     normalizeEmirate(req.Emirate),
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
	id, err := s.repo.Create(ctx, attraction)
	if err != nil {
		log.Printf("attraction: create failed: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *attractionService) Update(ctx context.Context, req request_models.UpdateAttractionRequest) error {
	existing, err := s.repo.GetByID(ctx, req.ID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrAttractionNotFound
	}

	existing.Name = req.Name
	existing.Emirate = normalizeEmirate(req.Emirate)
	existing.Price = req.Price
	existing.Duration = req.Duration
	existing.Description = req.Description
	existing.ImageURL = req.ImageURL
	existing.Category = req.Category

	if err := s.repo.Update(ctx, existing); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *attractionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *attractionService) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	attraction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}
	return attraction, nil
}

func (s *attractionService) List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	attractions, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}

func (s *attractionService) ListByEmirates(ctx context.Context, emirates []string) ([]db_models.Attraction, error) {
	attractions, err := s.repo.ListByEmirates(ctx, emirateFilter(emirates))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}

func (s *attractionService) SearchByName(ctx context.Context, name string, page, pageSize int) ([]db_models.Attraction, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	attractions, err := s.repo.SearchByName(ctx, name, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}
