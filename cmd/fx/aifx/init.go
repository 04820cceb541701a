package aifx

import (
	"os"

	"go.uber.org/fx"

	"mindwijzer/pkg/utils"
)

var Module = fx.Provide(
	provideAnalysisClient)

func provideAnalysisClient() (utils.AnalysisClientInterface, error) {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}
	return utils.NewAnalysisClient(provider, os.Getenv("AI_API_KEY"), os.Getenv("AI_MODEL"))
}
