package repositories

import (
	"context"
	"errors"

	"safar/internal/models/db_models"

	"gorm.io/gorm"
)

type ItineraryRepository interface {
	// Upsert overwrites any previously selected package for the submission;
	// starting a new trip simply writes over the old one.
	Upsert(ctx context.Context, itinerary *db_models.SavedItinerary) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*db_models.SavedItinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Upsert(ctx context.Context, itinerary *db_models.SavedItinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.SavedItinerary
		err := tx.First(&existing, "submission_id = ?", itinerary.SubmissionID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(itinerary).Error
			}
			return err
		}

		existing.Method = itinerary.Method
		existing.PackageJSON = itinerary.PackageJSON
		itinerary.ID = existing.ID
		return tx.Save(&existing).Error
	})
}

func (r *itineraryRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*db_models.SavedItinerary, error) {
	var itinerary db_models.SavedItinerary
	err := r.db.WithContext(ctx).First(&itinerary, "submission_id = ?", submissionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}
