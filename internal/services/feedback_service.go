package services

import (
	"context"

	"github.com/google/uuid"

	"mindwijzer/internal/models/db_models"
	"mindwijzer/internal/models/request_models"
	"mindwijzer/internal/repositories"
	"mindwijzer/pkg/utils"
)

type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, userID uuid.UUID, req request_models.FeedbackRequest) error
	ListFeedback(ctx context.Context, page int, pageSize int) ([]db_models.Feedback, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	sessionRepo  repositories.SessionRepositoryInterface
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, sessionRepo: sessionRepo}
}

func (s *FeedbackService) SubmitFeedback(ctx context.Context, userID uuid.UUID, req request_models.FeedbackRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return utils.ErrInvalidRating
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return utils.ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if session == nil {
		return utils.ErrSessionNotFound
	}
	if session.UserID != userID {
		return utils.ErrNotSessionOwner
	}

	feedback := &db_models.Feedback{
		UserID:    userID,
		SessionID: sessionID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context, page int, pageSize int) ([]db_models.Feedback, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	feedbacks, err := s.feedbackRepo.ListFeedback(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return feedbacks, nil
}
