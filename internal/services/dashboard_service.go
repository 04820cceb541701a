package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"mindwijzer/internal/assessment"
	"mindwijzer/internal/models/response_models"
	"mindwijzer/internal/repositories"
	"mindwijzer/pkg/utils"
)

type DashboardServiceInterface interface {
	GetQuizDashboard(ctx context.Context, quizID string) (*response_models.QuizDashboard, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	quizRepo      repositories.QuizRepositoryInterface
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	quizRepo repositories.QuizRepositoryInterface,
) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, quizRepo: quizRepo}
}

// GetQuizDashboard aggregates completed-session scores per category:
// mean score and how results spread over the interpretation bands.
func (s *DashboardService) GetQuizDashboard(ctx context.Context, quizID string) (*response_models.QuizDashboard, error) {
	id, err := uuid.Parse(quizID)
	if err != nil {
		return nil, utils.ErrQuizNotFound
	}
	snapshot, err := s.quizRepo.LoadSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, utils.ErrQuizNotFound
	}

	started, err := s.dashboardRepo.CountSessionsStarted(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	completed, err := s.dashboardRepo.CountSessionsCompleted(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	results, err := s.dashboardRepo.CompletedResults(ctx, id, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	bands := make(map[string]map[string]int)
	for _, result := range results {
		var scores assessment.ScoreVector
		if err := json.Unmarshal([]byte(result.ScoresJSON), &scores); err != nil {
			// Skip a corrupt snapshot rather than failing the whole view.
			log.Printf("unreadable score snapshot for session %s: %v", result.SessionID, err)
			continue
		}
		for _, category := range snapshot.Quiz.Categories {
			score, ok := scores[category.ID]
			if !ok {
				continue
			}
			sums[category.ID] += score
			counts[category.ID]++

			thresholds := assessment.DefaultBandThresholds
			if category.Bands != nil {
				thresholds = *category.Bands
			}
			band := string(assessment.BandFor(score, thresholds))
			if bands[category.ID] == nil {
				bands[category.ID] = make(map[string]int)
			}
			bands[category.ID][band]++
		}
	}

	dashboard := &response_models.QuizDashboard{
		QuizID:            quizID,
		SessionsStarted:   started,
		SessionsCompleted: completed,
	}
	if started > 0 {
		dashboard.CompletionRate = float64(completed) / float64(started)
	}
	for _, category := range snapshot.Quiz.Categories {
		if counts[category.ID] == 0 {
			continue
		}
		dashboard.Categories = append(dashboard.Categories, response_models.CategoryStats{
			Category:         category.ID,
			MeanScore:        sums[category.ID] / float64(counts[category.ID]),
			BandDistribution: bands[category.ID],
		})
	}
	return dashboard, nil
}
