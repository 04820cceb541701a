package toolsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mindwijzer/internal/repositories"
	"mindwijzer/internal/services"
	"mindwijzer/pkg/utils"
)

var Module = fx.Provide(
	provideToolRepo, provideToolEmbeddingRepo, provideToolService)

func provideToolRepo(db *gorm.DB) repositories.ToolRepositoryInterface {
	return repositories.NewToolRepository(db)
}

func provideToolEmbeddingRepo(db *gorm.DB) repositories.IToolEmbeddingRepository {
	return repositories.NewToolEmbeddingRepository(db)
}

func provideToolService(
	toolRepo repositories.ToolRepositoryInterface,
	embeddingRepo repositories.IToolEmbeddingRepository,
	analysis utils.AnalysisClientInterface,
) services.ToolServiceInterface {
	return services.NewToolService(toolRepo, embeddingRepo, analysis)
}
