package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwijzer/internal/assessment"
	"mindwijzer/internal/models/db_models"
	"mindwijzer/internal/models/request_models"
	"mindwijzer/internal/repositories"
	"mindwijzer/pkg/utils"
)

type fakeQuizRepo struct {
	snapshot *repositories.QuizSnapshot
}

func (f *fakeQuizRepo) ListPublished(ctx context.Context, page int, pageSize int) ([]db_models.Quiz, error) {
	return nil, nil
}

func (f *fakeQuizRepo) LoadSnapshot(ctx context.Context, quizID uuid.UUID) (*repositories.QuizSnapshot, error) {
	if f.snapshot == nil || f.snapshot.Record.ID != quizID {
		return nil, nil
	}
	return f.snapshot, nil
}

func (f *fakeQuizRepo) FlushCache() {}

type fakeToolRepo struct {
	catalog assessment.ToolCatalog
	matrix  assessment.RecommendationMatrix
}

func (f *fakeToolRepo) ListTools(ctx context.Context, page int, pageSize int) ([]db_models.Tool, error) {
	return nil, nil
}

func (f *fakeToolRepo) GetToolBySlug(ctx context.Context, slug string) (*db_models.Tool, error) {
	return nil, nil
}

func (f *fakeToolRepo) LoadCatalog(ctx context.Context) (assessment.ToolCatalog, error) {
	return f.catalog, nil
}

func (f *fakeToolRepo) LoadMatrix(ctx context.Context, quizID uuid.UUID) (assessment.RecommendationMatrix, error) {
	return f.matrix, nil
}

func (f *fakeToolRepo) FlushCache() {}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*db_models.AssessmentSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*db_models.AssessmentSession)}
}

func (f *fakeSessionRepo) CreateSession(ctx context.Context, session *db_models.AssessmentSession) error {
	session.ID = uuid.New()
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.AssessmentSession, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionRepo) AppendAnswers(ctx context.Context, sessionID uuid.UUID, answers []db_models.SessionAnswer) error {
	session := f.sessions[sessionID]
	if session.Result != nil {
		return utils.ErrSessionSealed
	}
	for _, answer := range answers {
		for _, existing := range session.Answers {
			if existing.QuestionSlug == answer.QuestionSlug {
				return utils.ErrDuplicateAnswer
			}
		}
		answer.SessionID = sessionID
		session.Answers = append(session.Answers, answer)
	}
	return nil
}

func (f *fakeSessionRepo) AdvanceToPhaseTwo(ctx context.Context, sessionID uuid.UUID, categories []string) error {
	session := f.sessions[sessionID]
	session.Phase = 2
	session.SelectedCategories = categories
	return nil
}

func (f *fakeSessionRepo) SaveResult(ctx context.Context, result *db_models.SessionResult, completedAt int64) error {
	session := f.sessions[result.SessionID]
	if session.Result != nil {
		return utils.ErrSessionSealed
	}
	session.Result = result
	session.CompletedAt = completedAt
	return nil
}

func (f *fakeSessionRepo) SetNarrative(ctx context.Context, sessionID uuid.UUID, narrative string) error {
	session := f.sessions[sessionID]
	session.Result.Narrative = narrative
	session.Result.NarrativeReady = true
	return nil
}

type fakeAnalysisClient struct{}

func (fakeAnalysisClient) GenerateReportNarrative(ctx context.Context, input utils.NarrativeInput) (string, error) {
	return "rustig verhaal", nil
}

func (fakeAnalysisClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(make([]float32, 4)), nil
}

func zelfscanSnapshot() *repositories.QuizSnapshot {
	quiz := &assessment.Quiz{
		ID:    "zelfscan",
		Title: "Zelfscan Aandacht",
		Categories: []assessment.Category{
			{ID: "focus", Name: "Aandacht & Focus", Icon: assessment.IconFocus},
			{ID: "energie", Name: "Energie", Icon: assessment.IconEnergy},
		},
		Questions: []assessment.Question{
			{ID: "q1", CategoryID: "focus", Prompt: "Ik ben snel afgeleid", Weight: 1, Phase: 1, Domain: assessment.DefaultDomain},
			{ID: "q2", CategoryID: "energie", Prompt: "Ik ben vaak moe", Weight: 1, Phase: 1, Domain: assessment.DefaultDomain},
			{ID: "q3", CategoryID: "focus", Prompt: "Plannen lukt me niet", Weight: 1, Phase: 2, Domain: assessment.DefaultDomain},
			{ID: "q4", CategoryID: "energie", Prompt: "Ik kom moeilijk op gang", Weight: 1, Phase: 2, Domain: assessment.DefaultDomain},
		},
	}
	return &repositories.QuizSnapshot{
		Quiz: quiz,
		Templates: assessment.TemplateSet{
			assessment.StandardTemplateID: {
				assessment.PerspectiveSelf: {
					assessment.BandVeryLow:  {Title: "Heel laag"},
					assessment.BandLow:      {Title: "Laag"},
					assessment.BandMedium:   {Title: "Gemiddeld"},
					assessment.BandHigh:     {Title: "Hoog"},
					assessment.BandVeryHigh: {Title: "Heel hoog"},
				},
			},
		},
		Record: db_models.Quiz{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			Title:     "Zelfscan Aandacht",
		},
	}
}

func newTestAssessmentService(snapshot *repositories.QuizSnapshot) (AssessmentServiceInterface, *fakeSessionRepo) {
	sessionRepo := newFakeSessionRepo()
	toolRepo := &fakeToolRepo{
		catalog: assessment.ToolCatalog{
			"timer": {ID: "timer", Title: "Focus timer"},
		},
		matrix: assessment.RecommendationMatrix{
			Entries: map[string]assessment.TierLists{
				"focus": {High: []string{"timer"}},
			},
		},
	}
	service := NewAssessmentService(&fakeQuizRepo{snapshot: snapshot}, toolRepo, sessionRepo, nil, nil)
	return service, sessionRepo
}

func TestStartSessionUnknownQuiz(t *testing.T) {
	service, _ := newTestAssessmentService(zelfscanSnapshot())

	_, err := service.StartSession(context.Background(), uuid.New(), request_models.StartAssessmentRequest{
		QuizID: uuid.New().String(),
	})

	assert.ErrorIs(t, err, utils.ErrQuizNotFound)
}

func TestStartSessionReturnsPhaseOneQuestions(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, _ := newTestAssessmentService(snapshot)

	resp, err := service.StartSession(context.Background(), uuid.New(), request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Phase)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "q1", resp.Questions[0].ID)
	assert.Equal(t, "q2", resp.Questions[1].ID)
}

func TestSubmitAnswersRejectsOtherUsersSession(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, _ := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)

	_, err = service.SubmitAnswers(context.Background(), uuid.New(), uuid.MustParse(started.SessionID), request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{{QuestionID: "q1", Value: 2}},
	})

	assert.ErrorIs(t, err, utils.ErrNotSessionOwner)
}

func TestSubmitAnswersRejectsPhaseTwoQuestionInPhaseOne(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, _ := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)

	_, err = service.SubmitAnswers(context.Background(), owner, uuid.MustParse(started.SessionID), request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{{QuestionID: "q3", Value: 2}},
	})

	assert.ErrorIs(t, err, utils.ErrWrongPhase)
}

func TestSubmitAnswersRejectsOutOfRangeValue(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, _ := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)

	_, err = service.SubmitAnswers(context.Background(), owner, uuid.MustParse(started.SessionID), request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{{QuestionID: "q1", Value: 9}},
	})

	var invalidErr *assessment.InvalidAnswerValueError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestPhaseOneCompletionSelectsDeepDiveCategories(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, sessionRepo := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.SessionID)

	// Partial submission: still phase 1, q2 remains open.
	resp, err := service.SubmitAnswers(context.Background(), owner, sessionID, request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{{QuestionID: "q1", Value: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Phase)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "q2", resp.Questions[0].ID)
	assert.False(t, resp.IsComplete)

	// Finishing phase 1: focus scores 8.0, energie 0.0, only focus goes deep.
	resp, err = service.SubmitAnswers(context.Background(), owner, sessionID, request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{{QuestionID: "q2", Value: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Phase)
	assert.Equal(t, []string{"focus"}, resp.SelectedCategories)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "q3", resp.Questions[0].ID)

	session := sessionRepo.sessions[sessionID]
	assert.Equal(t, 2, session.Phase)
}

func TestCompleteSessionSealsAndRecommends(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, sessionRepo := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.SessionID)

	_, err = service.SubmitAnswers(context.Background(), owner, sessionID, request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{
			{QuestionID: "q1", Value: 4},
			{QuestionID: "q2", Value: 1},
		},
	})
	require.NoError(t, err)

	report, err := service.CompleteSession(context.Background(), owner, sessionID, "")
	require.NoError(t, err)

	require.Len(t, report.Scores, 2)
	assert.Equal(t, "focus", report.Scores[0].Category)
	assert.InDelta(t, 8.0, report.Scores[0].Score, 1e-9)
	assert.Equal(t, "very_high", report.Scores[0].Band)
	assert.Equal(t, "Heel hoog", report.Scores[0].Title)
	assert.Equal(t, "energie", report.Scores[1].Category)
	assert.InDelta(t, 0.0, report.Scores[1].Score, 1e-9)

	require.Len(t, report.Recommendations.High, 1)
	assert.Equal(t, "timer", report.Recommendations.High[0].ID)

	// Sealed: a second completion must fail, further answers too.
	_, err = service.CompleteSession(context.Background(), owner, sessionID, "")
	assert.ErrorIs(t, err, utils.ErrSessionSealed)
	_, err = service.SubmitAnswers(context.Background(), owner, sessionID, request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{{QuestionID: "q3", Value: 2}},
	})
	assert.ErrorIs(t, err, utils.ErrSessionSealed)

	session := sessionRepo.sessions[sessionID]
	assert.NotZero(t, session.CompletedAt)
}

func TestCompleteSessionRequiresFullPhaseOne(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, _ := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.SessionID)

	_, err = service.SubmitAnswers(context.Background(), owner, sessionID, request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{{QuestionID: "q1", Value: 3}},
	})
	require.NoError(t, err)

	_, err = service.CompleteSession(context.Background(), owner, sessionID, "")

	var incompleteErr *assessment.IncompleteSessionError
	require.ErrorAs(t, err, &incompleteErr)
	assert.Equal(t, []string{"q2"}, incompleteErr.Missing)
}

func TestGetReportRoundTripsStoredResult(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, _ := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)
	sessionID := uuid.MustParse(started.SessionID)

	_, err = service.SubmitAnswers(context.Background(), owner, sessionID, request_models.SubmitAnswersRequest{
		Answers: []request_models.AnswerPayload{
			{QuestionID: "q1", Value: 4},
			{QuestionID: "q2", Value: 1},
		},
	})
	require.NoError(t, err)

	completed, err := service.CompleteSession(context.Background(), owner, sessionID, "")
	require.NoError(t, err)

	report, err := service.GetReport(context.Background(), owner, sessionID)
	require.NoError(t, err)
	assert.Equal(t, completed.Scores, report.Scores)
	assert.Equal(t, completed.Recommendations, report.Recommendations)
	assert.False(t, report.NarrativeReady)
}

func TestGetReportBeforeCompletion(t *testing.T) {
	snapshot := zelfscanSnapshot()
	service, _ := newTestAssessmentService(snapshot)
	owner := uuid.New()

	started, err := service.StartSession(context.Background(), owner, request_models.StartAssessmentRequest{
		QuizID: snapshot.Record.ID.String(),
	})
	require.NoError(t, err)

	_, err = service.GetReport(context.Background(), owner, uuid.MustParse(started.SessionID))

	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
