package repositories

import (
	"context"
	"errors"
	"fmt"

	"safar/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttractionRepository interface {
	Create(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error)
	Update(ctx context.Context, attraction *db_models.Attraction) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Attraction, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error)
	ListByEmirates(ctx context.Context, emirates []string) ([]db_models.Attraction, error)
	SearchByName(ctx context.Context, name string, page, pageSize int) ([]db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) Create(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(attraction).Error; err != nil {
		return uuid.Nil, err
	}
	return attraction.ID, nil
}

func (r *attractionRepository) Update(ctx context.Context, attraction *db_models.Attraction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(attraction)
		if result.Error != nil {
			return fmt.Errorf("failed to update attraction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *attractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Attraction{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return a default value and nil error when no rows are found.

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).First(&attraction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("name asc").
		Offset(offset).
		Limit(pageSize).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByEmirates(ctx context.Context, emirates []string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction

	query := r.db.WithContext(ctx).Order("name asc")
	if len(emirates) > 0 {
		query = query.Where("emirate IN ?", emirates)
	}

	if err := query.Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) SearchByName(ctx context.Context, name string, page, pageSize int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Offset(offset).
		Limit(pageSize).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}
