package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mindwijzer/internal/models/db_models"
)

type DashboardRepositoryInterface interface {
	CountSessionsStarted(ctx context.Context, quizID uuid.UUID) (int64, error)
	CountSessionsCompleted(ctx context.Context, quizID uuid.UUID) (int64, error)
	// CompletedResults streams the stored score snapshots of a quiz's
	// completed sessions; per-category aggregation happens in the service.
	CompletedResults(ctx context.Context, quizID uuid.UUID, limit int) ([]db_models.SessionResult, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepositoryInterface {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountSessionsStarted(ctx context.Context, quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.AssessmentSession{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountSessionsCompleted(ctx context.Context, quizID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.AssessmentSession{}).
		Where("quiz_id = ? AND completed_at > 0", quizID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CompletedResults(ctx context.Context, quizID uuid.UUID, limit int) ([]db_models.SessionResult, error) {
	if limit <= 0 || limit > 5000 {
		limit = 1000
	}

	var results []db_models.SessionResult
	err := r.db.WithContext(ctx).
		Joins("JOIN assessment_sessions ON assessment_sessions.id = session_results.session_id").
		Where("assessment_sessions.quiz_id = ?", quizID).
		Order("session_results.created_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}
