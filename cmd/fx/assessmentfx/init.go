package assessmentfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mindwijzer/internal/repositories"
	"mindwijzer/internal/services"
	"mindwijzer/pkg/utils"
)

var Module = fx.Provide(
	provideSessionRepo, provideAssessmentService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepositoryInterface {
	return repositories.NewSessionRepository(db)
}

func provideAssessmentService(
	quizRepo repositories.QuizRepositoryInterface,
	toolRepo repositories.ToolRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	analysis utils.AnalysisClientInterface,
	mailService services.IMailService,
) services.AssessmentServiceInterface {
	return services.NewAssessmentService(quizRepo, toolRepo, sessionRepo, analysis, mailService)
}
