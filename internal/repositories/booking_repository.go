package repositories

import (
	"context"
	"errors"

	"safar/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Booking, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return uuid.Nil, err
	}
	return booking.ID, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).Preload("Submission").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Submission").
		Order("created_at desc").
		Offset(offset).
		Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
