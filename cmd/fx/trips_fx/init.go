package trips_fx

import (
	"safar/internal/api/controllers"
	"safar/internal/repositories"
	"safar/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideSubmissionRepo, provideSubmissionService, provideSubmissionController,
	provideBookingRepo, provideBookingService, provideBookingController)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepository {
	return repositories.NewSubmissionRepository(db)
}

func provideSubmissionService(repo repositories.SubmissionRepository) services.SubmissionService {
	return services.NewSubmissionService(repo)
}

func provideSubmissionController(service services.SubmissionService) *controllers.SubmissionController {
	return controllers.NewSubmissionController(service)
}

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	submissionRepo repositories.SubmissionRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.BookingService {
	return services.NewBookingService(bookingRepo, submissionRepo, itineraryRepo)
}

func provideBookingController(service services.BookingService) *controllers.BookingController {
	return controllers.NewBookingController(service)
}
