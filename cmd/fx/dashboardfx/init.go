package dashboardfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mindwijzer/internal/repositories"
	"mindwijzer/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepositoryInterface {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	quizRepo repositories.QuizRepositoryInterface,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, quizRepo)
}
