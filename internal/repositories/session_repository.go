package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"mindwijzer/internal/models/db_models"
	"mindwijzer/pkg/utils"
)

type SessionRepositoryInterface interface {
	CreateSession(ctx context.Context, session *db_models.AssessmentSession) error
	GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.AssessmentSession, error)
	// AppendAnswers adds answers to an open session. Fails with
	// ErrSessionSealed once a result exists and with ErrDuplicateAnswer
	// when a question was already answered; answers are never updated.
	AppendAnswers(ctx context.Context, sessionID uuid.UUID, answers []db_models.SessionAnswer) error
	AdvanceToPhaseTwo(ctx context.Context, sessionID uuid.UUID, categories []string) error
	// SaveResult seals the session: write-once, a second result for the
	// same session fails with ErrSessionSealed.
	SaveResult(ctx context.Context, result *db_models.SessionResult, completedAt int64) error
	SetNarrative(ctx context.Context, sessionID uuid.UUID, narrative string) error
}

func NewSessionRepository(db *gorm.DB) SessionRepositoryInterface {
	return &sessionRepository{db: db}
}

type sessionRepository struct {
	db *gorm.DB
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *db_models.AssessmentSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.AssessmentSession, error) {
	var session db_models.AssessmentSession
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Preload("Result").
		Where("id = ?", sessionID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) AppendAnswers(ctx context.Context, sessionID uuid.UUID, answers []db_models.SessionAnswer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sealed, err := r.resultExists(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if sealed {
			return utils.ErrSessionSealed
		}

		var existing []db_models.SessionAnswer
		if err := tx.WithContext(ctx).Where("session_id = ?", sessionID).Find(&existing).Error; err != nil {
			return err
		}
		seen := make(map[string]bool, len(existing))
		for _, a := range existing {
			seen[a.QuestionSlug] = true
		}

		for i := range answers {
			if seen[answers[i].QuestionSlug] {
				return utils.ErrDuplicateAnswer
			}
			seen[answers[i].QuestionSlug] = true
			answers[i].SessionID = sessionID
		}

		if len(answers) == 0 {
			return nil
		}
		return tx.WithContext(ctx).Create(&answers).Error
	})
}

func (r *sessionRepository) AdvanceToPhaseTwo(ctx context.Context, sessionID uuid.UUID, categories []string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.AssessmentSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"phase":               2,
			"selected_categories": pq.StringArray(categories),
		}).Error
}

func (r *sessionRepository) SaveResult(ctx context.Context, result *db_models.SessionResult, completedAt int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sealed, err := r.resultExists(ctx, tx, result.SessionID)
		if err != nil {
			return err
		}
		if sealed {
			return utils.ErrSessionSealed
		}

		if err := tx.WithContext(ctx).Create(result).Error; err != nil {
			return err
		}

		return tx.WithContext(ctx).
			Model(&db_models.AssessmentSession{}).
			Where("id = ?", result.SessionID).
			Update("completed_at", completedAt).Error
	})
}

func (r *sessionRepository) SetNarrative(ctx context.Context, sessionID uuid.UUID, narrative string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SessionResult{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"narrative":       narrative,
			"narrative_ready": true,
		}).Error
}

func (r *sessionRepository) resultExists(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&db_models.SessionResult{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count > 0, err
}
