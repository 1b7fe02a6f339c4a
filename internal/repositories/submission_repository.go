package repositories

import (
	"context"
	"errors"

	"safar/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *db_models.Submission) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Submission, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *db_models.Submission) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return uuid.Nil, err
	}
	return submission.ID, nil
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*db_models.Submission, error) {
	var submission db_models.Submission
	err := r.db.WithContext(ctx).First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Submission, error) {
	var submissions []db_models.Submission
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(pageSize).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
