package controllersfx

import (
	"go.uber.org/fx"

	"mindwijzer/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAssessmentController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewToolsController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewAdminController))
