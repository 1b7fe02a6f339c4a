package itinerary_fx

import (
	"safar/internal/api/controllers"
	"safar/internal/repositories"
	"safar/internal/services"
	"safar/pkg/memcache"
	"safar/pkg/utils"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryCache,
	provideItineraryService,
	provideCustomizeService,
	provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryCache() memcache.ItineraryCache {
	return memcache.NewItineraryCache()
}

func provideItineraryService(
	submissionRepo repositories.SubmissionRepository,
	attractionRepo repositories.AttractionRepository,
	hotelRepo repositories.HotelRepository,
	transportRepo repositories.TransportRepository,
	itineraryRepo repositories.ItineraryRepository,
	textClient utils.TextClientInterface,
	cache memcache.ItineraryCache,
) services.ItineraryService {
	return services.NewItineraryService(
		submissionRepo,
		attractionRepo,
		hotelRepo,
		transportRepo,
		itineraryRepo,
		textClient,
		cache,
	)
}

func provideCustomizeService(
	itineraryRepo repositories.ItineraryRepository,
	hotelRepo repositories.HotelRepository,
	transportRepo repositories.TransportRepository,
) services.CustomizeService {
	return services.NewCustomizeService(itineraryRepo, hotelRepo, transportRepo)
}

func provideItineraryController(itineraries services.ItineraryService, customize services.CustomizeService) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraries, customize)
}
