package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"mindwijzer/cmd/fx/aifx"
	"mindwijzer/cmd/fx/assessmentfx"
	"mindwijzer/cmd/fx/controllersfx"
	"mindwijzer/cmd/fx/dashboardfx"
	"mindwijzer/cmd/fx/dbfx"
	"mindwijzer/cmd/fx/feedbackfx"
	"mindwijzer/cmd/fx/mailfx"
	"mindwijzer/cmd/fx/quizfx"
	"mindwijzer/cmd/fx/toolsfx"
	"mindwijzer/internal/api/controllers"
	"mindwijzer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		aifx.Module,
		mailfx.Module,
		quizfx.Module,
		toolsfx.Module,
		assessmentfx.Module,
		feedbackfx.Module,
		dashboardfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
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

func ProvideRouter(
	assessmentController *controllers.AssessmentController,
	quizController *controllers.QuizController,
	toolsController *controllers.ToolsController,
	feedbackController *controllers.FeedbackController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, assessmentController, quizController, toolsController, feedbackController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	assessmentController *controllers.AssessmentController,
	quizController *controllers.QuizController,
	toolsController *controllers.ToolsController,
	feedbackController *controllers.FeedbackController,
	adminController *controllers.AdminController) {

	quizGroup := r.Group("/quizzes")
	quizGroup.GET("", quizController.ListQuizzes)
	quizGroup.GET("/:quizId", quizController.GetQuizDetail)

	toolsGroup := r.Group("/tools")
	toolsGroup.GET("", toolsController.ListTools)
	toolsGroup.POST("/search", toolsController.SearchTools)
	toolsGroup.GET("/:slug", toolsController.GetTool)

	assessmentGroup := r.Group("/assessments")
	assessmentGroup.Use(middleware.JWTAuthMiddleware())
	assessmentGroup.POST("", assessmentController.StartAssessment)
	assessmentGroup.GET("/:sessionId/questions", assessmentController.GetQuestions)
	assessmentGroup.POST("/:sessionId/answers", assessmentController.SubmitAnswers)
	assessmentGroup.POST("/:sessionId/complete", assessmentController.CompleteAssessment)
	assessmentGroup.GET("/:sessionId/report", assessmentController.GetReport)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.Use(middleware.JWTAuthMiddleware())
	feedbackGroup.POST("", feedbackController.SubmitFeedback)
	feedbackGroup.GET("", middleware.RoleMiddleware("admin"), feedbackController.ListFeedback)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware())
	adminGroup.Use(middleware.RoleMiddleware("admin"))
	adminGroup.Use(middleware.OperatorKeyMiddleware())
	adminGroup.GET("/dashboard/:quizId", adminController.GetQuizDashboard)
	adminGroup.POST("/catalog/reload", adminController.ReloadCatalog)
	adminGroup.POST("/tools/:slug/reindex", adminController.ReindexTool)
}
