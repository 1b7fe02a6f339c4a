package resources_fx

import (
	"safar/internal/api/controllers"
	"safar/internal/repositories"
	"safar/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAttractionRepo, provideAttractionService, provideAttractionController,
	provideHotelRepo, provideHotelService, provideHotelController,
	provideTransportRepo, provideTransportService, provideTransportController)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideAttractionService(repo repositories.AttractionRepository) services.AttractionService {
	return services.NewAttractionService(repo)
}

func provideAttractionController(service services.AttractionService) *controllers.AttractionController {
	return controllers.NewAttractionController(service)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideHotelService(repo repositories.HotelRepository) services.HotelService {
	return services.NewHotelService(repo)
}

func provideHotelController(service services.HotelService) *controllers.HotelController {
	return controllers.NewHotelController(service)
}

func provideTransportRepo(db *gorm.DB) repositories.TransportRepository {
	return repositories.NewTransportRepository(db)
}

func provideTransportService(repo repositories.TransportRepository) services.TransportService {
	return services.NewTransportService(repo)
}

func provideTransportController(service services.TransportService) *controllers.TransportController {
	return controllers.NewTransportController(service)
}
