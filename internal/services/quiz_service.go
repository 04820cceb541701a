package services

import (
	"context"

	"github.com/google/uuid"

	"mindwijzer/internal/models/db_models"
	"mindwijzer/internal/models/response_models"
	"mindwijzer/internal/repositories"
	"mindwijzer/pkg/utils"
)

type QuizServiceInterface interface {
	ListQuizzes(ctx context.Context, page int, pageSize int) ([]response_models.QuizSummary, error)
	GetQuizDetail(ctx context.Context, quizID string) (*response_models.QuizDetail, error)
}

type QuizService struct {
	quizRepo repositories.QuizRepositoryInterface
}

func NewQuizService(quizRepo repositories.QuizRepositoryInterface) QuizServiceInterface {
	return &QuizService{quizRepo: quizRepo}
}

func (s *QuizService) ListQuizzes(ctx context.Context, page int, pageSize int) ([]response_models.QuizSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	quizzes, err := s.quizRepo.ListPublished(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, quizSummary(quiz))
	}
	return summaries, nil
}

func (s *QuizService) GetQuizDetail(ctx context.Context, quizID string) (*response_models.QuizDetail, error) {
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

	detail := &response_models.QuizDetail{QuizSummary: quizSummary(snapshot.Record)}
	for _, category := range snapshot.Quiz.Categories {
		detail.Categories = append(detail.Categories, response_models.CategoryView{
			ID:   category.ID,
			Name: category.Name,
			Icon: string(category.Icon),
		})
	}
	return detail, nil
}

func quizSummary(quiz db_models.Quiz) response_models.QuizSummary {
	return response_models.QuizSummary{
		ID:            quiz.ID.String(),
		Title:         quiz.Title,
		Audience:      quiz.Audience,
		ResultType:    quiz.ResultType,
		CategoryCount: len(quiz.Categories),
		QuestionCount: len(quiz.Questions),
	}
}
