package quizfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mindwijzer/internal/repositories"
	"mindwijzer/internal/services"
)

var Module = fx.Provide(
	provideQuizRepo, provideQuizService)

func provideQuizRepo(db *gorm.DB) repositories.QuizRepositoryInterface {
	return repositories.NewQuizRepository(db)
}

func provideQuizService(quizRepo repositories.QuizRepositoryInterface) services.QuizServiceInterface {
	return services.NewQuizService(quizRepo)
}
