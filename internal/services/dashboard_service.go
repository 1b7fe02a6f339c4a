package services

import (
	"context"
	"log"

	"safar/internal/models/response_models"
	"safar/internal/repositories"
	"safar/pkg/utils"
)

const (
	dashboardEmirateLimit = 7
	dashboardRecentLimit  = 10
)

type DashboardService interface {
	Report(ctx context.Context) (*response_models.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Report(ctx context.Context) (*response_models.DashboardReport, error) {
	report := &response_models.DashboardReport{}

	var err error
	if report.TotalSubmissions, err = s.repo.CountSubmissions(ctx); err != nil {
		return nil, s.fail("submission count", err)
	}
	if report.TotalBookings, err = s.repo.CountBookings(ctx); err != nil {
		return nil, s.fail("booking count", err)
	}
	if report.TotalAttractions, err = s.repo.CountAttractions(ctx); err != nil {
		return nil, s.fail("attraction count", err)
	}
	if report.TotalHotels, err = s.repo.CountHotels(ctx); err != nil {
		return nil, s.fail("hotel count", err)
	}
	if report.TotalTransports, err = s.repo.CountTransports(ctx); err != nil {
		return nil, s.fail("transport count", err)
	}
	if report.BookingRevenue, err = s.repo.SumBookingRevenue(ctx); err != nil {
		return nil, s.fail("revenue sum", err)
	}

	emirateRows, err := s.repo.SubmissionsByEmirate(ctx, dashboardEmirateLimit)
	if err != nil {
		return nil, s.fail("emirate breakdown", err)
	}
	report.SubmissionsByEmirate = make([]response_models.EmirateCount, 0, len(emirateRows))
	for _, row := range emirateRows {
		report.SubmissionsByEmirate = append(report.SubmissionsByEmirate, response_models.EmirateCount{
			Emirate: row.Emirate,
			Count:   row.Count,
		})
	}

	recentRows, err := s.repo.RecentBookings(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, s.fail("recent bookings", err)
	}
	report.RecentBookings = make([]response_models.RecentBooking, 0, len(recentRows))
	for _, row := range recentRows {
		report.RecentBookings = append(report.RecentBookings, response_models.RecentBooking{
			ID:           row.ID,
			PackageTitle: row.PackageTitle,
			TotalCost:    row.TotalCost,
			Status:       row.Status,
			ContactName:  row.ContactName,
			CreatedAt:    row.CreatedAt,
		})
	}

	return report, nil
}

func (s *dashboardService) fail(step string, err error) error {
	log.Printf("dashboard: %s failed: %v", step, err)
	return utils.ErrDatabaseError
}
