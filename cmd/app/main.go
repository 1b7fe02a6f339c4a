package main

import (
	"context"
	"log"
	"os"

	"safar/cmd/fx/admin_fx"
	"safar/cmd/fx/ai_fx"
	"safar/cmd/fx/db_fx"
	"safar/cmd/fx/itinerary_fx"
	"safar/cmd/fx/resources_fx"
	"safar/cmd/fx/trips_fx"
	"safar/internal/api"
	"safar/internal/api/controllers"
	"safar/internal/infra"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		resources_fx.Module,
		trips_fx.Module,
		itinerary_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(RegisterShutdown),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func RegisterShutdown(lc fx.Lifecycle, db *gorm.DB, textClient utils.TextClientInterface) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := textClient.Close(); err != nil {
				log.Printf("Error closing text client: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	submissionController *controllers.SubmissionController,
	itineraryController *controllers.ItineraryController,
	attractionController *controllers.AttractionController,
	hotelController *controllers.HotelController,
	transportController *controllers.TransportController,
	bookingController *controllers.BookingController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {
	r := gin.Default()

	api.RegisterRoutes(r, api.Controllers{
		Auth:        authController,
		Submissions: submissionController,
		Itineraries: itineraryController,
		Attractions: attractionController,
		Hotels:      hotelController,
		Transports:  transportController,
		Bookings:    bookingController,
		Dashboard:   dashboardController,
	})

	return r
}
