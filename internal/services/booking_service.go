package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"safar/internal/models/db_models"
	"safar/internal/models/response_models"
	"safar/internal/repositories"
	"safar/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const bookingStatusPending = "pending"

// BookingService records a booking against a submission's saved itinerary.
// The package title and total are snapshotted at booking time so later edits
// to the itinerary do not rewrite history.
type BookingService interface {
	Create(ctx context.Context, submissionID string) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Booking, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type bookingService struct {
	bookingRepo    repositories.BookingRepository
	submissionRepo repositories.SubmissionRepository
	itineraryRepo  repositories.ItineraryRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository, submissionRepo repositories.SubmissionRepository, itineraryRepo repositories.ItineraryRepository) BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		submissionRepo: submissionRepo,
		itineraryRepo:  itineraryRepo,
	}
}

func (s *bookingService) Create(ctx context.Context, submissionID string) (uuid.UUID, error) {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return uuid.Nil, utils.ErrSubmissionNotFound
	}

	saved, err := s.itineraryRepo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if saved == nil {
		return uuid.Nil, utils.ErrItineraryNotFound
	}

	var pkg response_models.ItineraryPackage
	if err := json.Unmarshal([]byte(saved.PackageJSON), &pkg); err != nil {
		return uuid.Nil, utils.ErrItineraryNotFound
	}

	booking := &db_models.Booking{
		SubmissionID: sub.ID,
		PackageTitle: pkg.Title,
		TotalCost:    pkg.TotalCost,
		Status:       bookingStatusPending,
	}
	id, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		log.Printf("booking: create failed for submission %s: %v", submissionID, err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, page, pageSize int) ([]db_models.Booking, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	bookings, err := s.bookingRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	switch status {
	case "pending", "confirmed", "cancelled":
	default:
		return utils.ErrInvalidInput
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrBookingNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}
