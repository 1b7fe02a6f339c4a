package services

import (
	"context"
	"log"
	"strings"

	"safar/internal/models/db_models"
	"safar/internal/models/request_models"
	"safar/internal/repositories"
	"safar/pkg/utils"

	"github.com/google/uuid"
)

type SubmissionService interface {
	Submit(ctx context.Context, req request_models.SubmitPreferencesRequest) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Submission, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Submission, error)
}

type submissionService struct {
	repo repositories.SubmissionRepository
}

func NewSubmissionService(repo repositories.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo}
}

func (s *submissionService) Submit(ctx context.Context, req request_models.SubmitPreferencesRequest) (uuid.UUID, error) {
	nights := parseNights(req.TripDuration)
	if nights < 1 {
		return uuid.Nil, utils.ErrInvalidInput
	}

	sub := &db_models.Submission{
		Adults:           req.Adults,
		Kids:             req.Kids,
		Infants:          req.Infants,
		Nights:           nights,
		Emirates:         normalizeEmirates(req.Emirates),
		Month:            strings.TrimSpace(req.Month),
		Budget:           strings.TrimSpace(req.Budget),
		DepartureCountry: strings.TrimSpace(req.DepartureCountry),
		ContactName:      strings.TrimSpace(req.ContactName),
		ContactEmail:     strings.TrimSpace(req.ContactEmail),
		ContactPhone:     strings.TrimSpace(req.ContactPhone),
	}

	id, err := s.repo.Create(ctx, sub)
	if err != nil {
		log.Printf("submission: create failed: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *submissionService) GetByID(ctx context.Context, id string) (*db_models.Submission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubmissionNotFound
	}
	return sub, nil
}

func (s *submissionService) List(ctx context.Context, page, pageSize int) ([]db_models.Submission, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	subs, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}

// parseNights reads the form's free-text trip duration ("5", "5 nights",
// "7 days") into a night count.
func parseNights(text string) int {
	m := numericRe.FindString(text)
	if m == "" {
		return 0
	}
	n := 0
	for _, ch := range m {
		if ch < '0' || ch > '9' {
			return 0
		}
		n = n*10 + int(ch-'0')
	}
	return n
}

func normalizeEmirate(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// normalizeEmirates lowercases and dedupes; "all" collapses the whole list to
// the sentinel.
func normalizeEmirates(emirates []string) []string {
	seen := make(map[string]bool, len(emirates))
	out := make([]string, 0, len(emirates))
	for _, e := range emirates {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || seen[e] {
			continue
		}
		if e == "all" {
			return []string{"all"}
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
