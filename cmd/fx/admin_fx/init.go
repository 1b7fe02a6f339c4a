package admin_fx

import (
	"safar/internal/api/controllers"
	"safar/internal/repositories"
	"safar/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideDashboardController,
	provideAuthService, provideAuthController)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository) services.DashboardService {
	return services.NewDashboardService(repo)
}

func provideDashboardController(service services.DashboardService) *controllers.DashboardController {
	return controllers.NewDashboardController(service)
}

func provideAuthService() services.AuthService {
	return services.NewAuthService()
}

func provideAuthController(service services.AuthService) *controllers.AuthController {
	return controllers.NewAuthController(service)
}
