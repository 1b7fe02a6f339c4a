package repositories

import (
	"context"
	"errors"

	"safar/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *db_models.Hotel) (uuid.UUID, error)
	Update(ctx context.Context, hotel *db_models.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Hotel, error)
	GetByName(ctx context.Context, name string) (*db_models.Hotel, error)
	List(ctx context.Context) ([]db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *db_models.Hotel) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(hotel).Error; err != nil {
		return uuid.Nil, err
	}
	return hotel.ID, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *db_models.Hotel) error {
	result := r.db.WithContext(ctx).Save(hotel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Hotel{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id string) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) GetByName(ctx context.Context, name string) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).Where("name ILIKE ?", name).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	if err := r.db.WithContext(ctx).Order("stars desc, name asc").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}
