package feedbackfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mindwijzer/internal/repositories"
	"mindwijzer/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, sessionRepo)
}
