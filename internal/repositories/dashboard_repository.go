package repositories

import (
	"context"

	"safar/internal/models/db_models"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	CountSubmissions(ctx context.Context) (int64, error)
	CountBookings(ctx context.Context) (int64, error)
	CountAttractions(ctx context.Context) (int64, error)
	CountHotels(ctx context.Context) (int64, error)
	CountTransports(ctx context.Context) (int64, error)

	SumBookingRevenue(ctx context.Context) (float64, error)
	SubmissionsByEmirate(ctx context.Context, limit int) ([]EmirateRow, error)
	RecentBookings(ctx context.Context, limit int) ([]RecentBookingRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

type EmirateRow struct {
	Emirate string `gorm:"column:emirate"`
	Count   int64  `gorm:"column:count"`
}

type RecentBookingRow struct {
	ID           string  `gorm:"column:id"`
	PackageTitle string  `gorm:"column:package_title"`
	TotalCost    float64 `gorm:"column:total_cost"`
	Status       string  `gorm:"column:status"`
	ContactName  string  `gorm:"column:contact_name"`
	CreatedAt    int64   `gorm:"column:created_at"`
}

func (r *dashboardRepository) CountSubmissions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Submission{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountBookings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Booking{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountAttractions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Attraction{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountHotels(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Hotel{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountTransports(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Transport{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) SumBookingRevenue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *dashboardRepository) SubmissionsByEmirate(ctx context.Context, limit int) ([]EmirateRow, error) {
	var rows []EmirateRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT e.emirate AS emirate, COUNT(*) AS count
		     FROM submissions s, unnest(s.emirates) AS e(emirate)
		     WHERE s.deleted_at IS NULL
		     GROUP BY e.emirate
		     ORDER BY count DESC
		     LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) RecentBookings(ctx context.Context, limit int) ([]RecentBookingRow, error) {
	var rows []RecentBookingRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT b.id, b.package_title, b.total_cost, b.status,
		            s.contact_name, b.created_at
		     FROM bookings b
		     JOIN submissions s ON s.id = b.submission_id
		     WHERE b.deleted_at IS NULL
		     ORDER BY b.created_at DESC
		     LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
