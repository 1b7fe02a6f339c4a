package repositories

import (
	"context"
	"errors"

	"safar/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransportRepository interface {
	Create(ctx context.Context, transport *db_models.Transport) (uuid.UUID, error)
	Update(ctx context.Context, transport *db_models.Transport) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Transport, error)
	GetByName(ctx context.Context, name string) (*db_models.Transport, error)
	List(ctx context.Context) ([]db_models.Transport, error)
}

type transportRepository struct {
	db *gorm.DB
}

func NewTransportRepository(db *gorm.DB) TransportRepository {
	return &transportRepository{db: db}
}

func (r *transportRepository) Create(ctx context.Context, transport *db_models.Transport) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(transport).Error; err != nil {
		return uuid.Nil, err
	}
	return transport.ID, nil
}

func (r *transportRepository) Update(ctx context.Context, transport *db_models.Transport) error {
	result := r.db.WithContext(ctx).Save(transport)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *transportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Transport{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *transportRepository) GetByID(ctx context.Context, id string) (*db_models.Transport, error) {
	var transport db_models.Transport
	err := r.db.WithContext(ctx).First(&transport, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transport, nil
}

func (r *transportRepository) GetByName(ctx context.Context, name string) (*db_models.Transport, error) {
	var transport db_models.Transport
	err := r.db.WithContext(ctx).Where("name ILIKE ?", name).First(&transport).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transport, nil
}

func (r *transportRepository) List(ctx context.Context) ([]db_models.Transport, error) {
	var transports []db_models.Transport
	if err := r.db.WithContext(ctx).Order("cost_per_day asc").Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}
