package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"mindwijzer/internal/assessment"
	"mindwijzer/internal/models/db_models"
	"mindwijzer/internal/models/request_models"
	"mindwijzer/internal/models/response_models"
	"mindwijzer/internal/repositories"
	"mindwijzer/pkg/utils"
)

type AssessmentServiceInterface interface {
	StartSession(ctx context.Context, userID uuid.UUID, req request_models.StartAssessmentRequest) (*response_models.QuestionSetResponse, error)
	GetCurrentQuestions(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*response_models.QuestionSetResponse, error)
	SubmitAnswers(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req request_models.SubmitAnswersRequest) (*response_models.PhaseResultResponse, error)
	CompleteSession(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, userEmail string) (*response_models.ReportResponse, error)
	GetReport(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*response_models.ReportResponse, error)
}

type AssessmentService struct {
	quizRepo    repositories.QuizRepositoryInterface
	toolRepo    repositories.ToolRepositoryInterface
	sessionRepo repositories.SessionRepositoryInterface
	analysis    utils.AnalysisClientInterface
	mailService IMailService
}

func NewAssessmentService(
	quizRepo repositories.QuizRepositoryInterface,
	toolRepo repositories.ToolRepositoryInterface,
	sessionRepo repositories.SessionRepositoryInterface,
	analysis utils.AnalysisClientInterface,
	mailService IMailService,
) AssessmentServiceInterface {
	return &AssessmentService{
		quizRepo:    quizRepo,
		toolRepo:    toolRepo,
		sessionRepo: sessionRepo,
		analysis:    analysis,
		mailService: mailService,
	}
}

func (s *AssessmentService) StartSession(ctx context.Context, userID uuid.UUID, req request_models.StartAssessmentRequest) (*response_models.QuestionSetResponse, error) {
	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		return nil, utils.ErrQuizNotFound
	}

	perspective := assessment.PerspectiveSelf
	if req.Perspective == string(assessment.PerspectiveParent) {
		perspective = assessment.PerspectiveParent
	}

	snapshot, err := s.quizRepo.LoadSnapshot(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, utils.ErrQuizNotFound
	}

	session := &db_models.AssessmentSession{
		QuizID:      quizID,
		UserID:      userID,
		Perspective: string(perspective),
		Phase:       1,
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.QuestionSetResponse{
		SessionID: session.ID.String(),
		Phase:     1,
		Questions: questionViews(snapshot.Quiz.QuestionsForPhase(1, nil)),
	}, nil
}

func (s *AssessmentService) GetCurrentQuestions(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*response_models.QuestionSetResponse, error) {
	session, snapshot, err := s.loadOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Result != nil {
		return &response_models.QuestionSetResponse{
			SessionID:  session.ID.String(),
			Phase:      session.Phase,
			IsComplete: true,
		}, nil
	}

	answered := answeredSet(session.Answers)
	var questions []assessment.Question
	if session.Phase == 1 {
		questions = snapshot.Quiz.QuestionsForPhase(1, nil)
	} else {
		questions = snapshot.Quiz.QuestionsForPhase(2, session.SelectedCategories)
	}

	return &response_models.QuestionSetResponse{
		SessionID: session.ID.String(),
		Phase:     session.Phase,
		Questions: questionViews(unanswered(questions, answered)),
	}, nil
}

func (s *AssessmentService) SubmitAnswers(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, req request_models.SubmitAnswersRequest) (*response_models.PhaseResultResponse, error) {
	session, snapshot, err := s.loadOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Result != nil {
		return nil, utils.ErrSessionSealed
	}

	rows := make([]db_models.SessionAnswer, 0, len(req.Answers))
	for _, payload := range req.Answers {
		question, ok := snapshot.Quiz.QuestionByID(payload.QuestionID)
		if !ok {
			return nil, &assessment.UnknownQuestionError{QuestionID: payload.QuestionID}
		}
		if question.Phase != session.Phase {
			return nil, utils.ErrWrongPhase
		}
		if session.Phase == 2 && !containsString(session.SelectedCategories, question.CategoryID) {
			return nil, utils.ErrWrongPhase
		}
		if !question.Domain.Contains(payload.Value) {
			return nil, &assessment.InvalidAnswerValueError{
				QuestionID: payload.QuestionID,
				Value:      payload.Value,
				Domain:     question.Domain,
			}
		}
		rows = append(rows, db_models.SessionAnswer{
			QuestionSlug: payload.QuestionID,
			Value:        payload.Value,
		})
	}

	if err := s.sessionRepo.AppendAnswers(ctx, session.ID, rows); err != nil {
		return nil, err
	}

	answered := answeredSet(session.Answers)
	for _, row := range rows {
		answered[row.QuestionSlug] = row.Value
	}

	if session.Phase == 1 {
		return s.finishPhaseOne(ctx, session, snapshot, answered)
	}

	remaining := unanswered(snapshot.Quiz.QuestionsForPhase(2, session.SelectedCategories), answered)
	return &response_models.PhaseResultResponse{
		SessionID:          session.ID.String(),
		SelectedCategories: session.SelectedCategories,
		Phase:              2,
		Questions:          questionViews(remaining),
		IsComplete:         len(remaining) == 0,
	}, nil
}

// finishPhaseOne runs branching once every phase-1 question is answered;
// until then it just reports what is still open.
func (s *AssessmentService) finishPhaseOne(ctx context.Context, session *db_models.AssessmentSession, snapshot *repositories.QuizSnapshot, answered assessment.AnswerSet) (*response_models.PhaseResultResponse, error) {
	remaining := unanswered(snapshot.Quiz.QuestionsForPhase(1, nil), answered)
	if len(remaining) > 0 {
		return &response_models.PhaseResultResponse{
			SessionID: session.ID.String(),
			Phase:     1,
			Questions: questionViews(remaining),
		}, nil
	}

	selected, err := assessment.SelectPhaseTwo(snapshot.Quiz, answered)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		// Single-phase quiz: nothing left to ask.
		return &response_models.PhaseResultResponse{
			SessionID:  session.ID.String(),
			Phase:      1,
			IsComplete: true,
		}, nil
	}

	if err := s.sessionRepo.AdvanceToPhaseTwo(ctx, session.ID, selected); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PhaseResultResponse{
		SessionID:          session.ID.String(),
		SelectedCategories: selected,
		Phase:              2,
		Questions:          questionViews(snapshot.Quiz.QuestionsForPhase(2, selected)),
	}, nil
}

func (s *AssessmentService) CompleteSession(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, userEmail string) (*response_models.ReportResponse, error) {
	session, snapshot, err := s.loadOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Result != nil {
		return nil, utils.ErrSessionSealed
	}

	answers := answeredSet(session.Answers)
	scores, err := assessment.ComputeScores(snapshot.Quiz, answers)
	if err != nil {
		return nil, err
	}

	perspective := assessment.Perspective(session.Perspective)
	scoreViews := buildScoreViews(snapshot, scores, perspective)

	matrix, err := s.toolRepo.LoadMatrix(ctx, session.QuizID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	catalog, err := s.toolRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	recommendation := assessment.Recommend(snapshot.Quiz, scores, matrix, catalog)
	recommendationView := buildRecommendationView(recommendation)

	result, err := marshalResult(session.ID, scores, scoreViews, recommendationView)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.SaveResult(ctx, result, utils.NowUnixSeconds()); err != nil {
		return nil, err
	}

	// The engine's contract ends at scores and recommendations; the
	// narrative and the notification mail are fire-and-forget.
	go s.generateNarrative(session, snapshot, scoreViews)
	if userEmail != "" && s.mailService != nil {
		go func() {
			if err := s.mailService.SendReportReadyMail(userEmail, snapshot.Quiz.Title, session.ID.String()); err != nil {
				log.Printf("report-ready mail for session %s failed: %v", session.ID, err)
			}
		}()
	}

	return &response_models.ReportResponse{
		SessionID:       session.ID.String(),
		QuizID:          session.QuizID.String(),
		Perspective:     session.Perspective,
		Scores:          scoreViews,
		Recommendations: recommendationView,
	}, nil
}

func (s *AssessmentService) GetReport(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*response_models.ReportResponse, error) {
	session, _, err := s.loadOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Result == nil {
		return nil, utils.ErrSessionNotFound
	}

	var scoreViews []response_models.CategoryScoreView
	if err := json.Unmarshal([]byte(session.Result.BandsJSON), &scoreViews); err != nil {
		return nil, err
	}
	var recommendationView response_models.RecommendationView
	if err := json.Unmarshal([]byte(session.Result.RecommendationJSON), &recommendationView); err != nil {
		return nil, err
	}

	return &response_models.ReportResponse{
		SessionID:       session.ID.String(),
		QuizID:          session.QuizID.String(),
		Perspective:     session.Perspective,
		Scores:          scoreViews,
		Recommendations: recommendationView,
		Narrative:       session.Result.Narrative,
		NarrativeReady:  session.Result.NarrativeReady,
	}, nil
}

// generateNarrative calls the external analysis provider with the
// structured result and stores whatever prose comes back. Failures are
// logged and left alone: the report stays valid without a narrative, and
// retry policy belongs to the provider side.
func (s *AssessmentService) generateNarrative(session *db_models.AssessmentSession, snapshot *repositories.QuizSnapshot, scoreViews []response_models.CategoryScoreView) {
	if s.analysis == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	input := utils.NarrativeInput{
		QuizTitle:   snapshot.Quiz.Title,
		Audience:    string(snapshot.Quiz.Audience),
		Perspective: session.Perspective,
	}
	for _, view := range scoreViews {
		input.Categories = append(input.Categories, utils.NarrativeCategory{
			Name:  view.Name,
			Score: view.Score,
			Band:  view.Band,
			Title: view.Title,
		})
	}

	narrative, err := s.analysis.GenerateReportNarrative(ctx, input)
	if err != nil {
		log.Printf("narrative generation for session %s failed: %v", session.ID, err)
		return
	}
	if err := s.sessionRepo.SetNarrative(ctx, session.ID, narrative); err != nil {
		log.Printf("storing narrative for session %s failed: %v", session.ID, err)
	}
}

func (s *AssessmentService) loadOwnedSession(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*db_models.AssessmentSession, *repositories.QuizSnapshot, error) {
	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, nil, utils.ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, nil, utils.ErrNotSessionOwner
	}

	snapshot, err := s.quizRepo.LoadSnapshot(ctx, session.QuizID)
	if err != nil {
		return nil, nil, err
	}
	if snapshot == nil {
		return nil, nil, utils.ErrQuizNotFound
	}
	return session, snapshot, nil
}

func buildScoreViews(snapshot *repositories.QuizSnapshot, scores assessment.ScoreVector, perspective assessment.Perspective) []response_models.CategoryScoreView {
	var views []response_models.CategoryScoreView
	for _, category := range snapshot.Quiz.Categories {
		score, ok := scores[category.ID]
		if !ok {
			continue
		}
		interpretation := assessment.Interpret(snapshot.Quiz, snapshot.Templates, category.ID, score, perspective)
		views = append(views, response_models.CategoryScoreView{
			Category:    category.ID,
			Name:        category.Name,
			Icon:        string(category.Icon),
			Score:       score,
			Band:        string(interpretation.Band),
			Title:       interpretation.Title,
			Description: interpretation.Description,
			Tip:         interpretation.Tip,
		})
	}
	return views
}

func buildRecommendationView(result assessment.RecommendationResult) response_models.RecommendationView {
	return response_models.RecommendationView{
		High:   toolViews(result.High, assessment.TierHigh),
		Medium: toolViews(result.Medium, assessment.TierMedium),
		Low:    toolViews(result.Low, assessment.TierLow),
	}
}

func toolViews(tools []assessment.Tool, tier assessment.Tier) []response_models.ToolView {
	views := make([]response_models.ToolView, 0, len(tools))
	for _, tool := range tools {
		reasoning := tool.Reasoning.Low
		switch tier {
		case assessment.TierHigh:
			reasoning = tool.Reasoning.High
		case assessment.TierMedium:
			reasoning = tool.Reasoning.Medium
		}
		views = append(views, response_models.ToolView{
			ID:          tool.ID,
			Title:       tool.Title,
			Description: tool.Description,
			Icon:        string(tool.Icon),
			Tags:        tool.Tags,
			Reasoning:   reasoning,
		})
	}
	return views
}

func marshalResult(sessionID uuid.UUID, scores assessment.ScoreVector, scoreViews []response_models.CategoryScoreView, recommendationView response_models.RecommendationView) (*db_models.SessionResult, error) {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}
	bandsJSON, err := json.Marshal(scoreViews)
	if err != nil {
		return nil, err
	}
	recommendationJSON, err := json.Marshal(recommendationView)
	if err != nil {
		return nil, err
	}
	return &db_models.SessionResult{
		SessionID:          sessionID,
		ScoresJSON:         string(scoresJSON),
		BandsJSON:          string(bandsJSON),
		RecommendationJSON: string(recommendationJSON),
	}, nil
}

func questionViews(questions []assessment.Question) []response_models.QuestionView {
	views := make([]response_models.QuestionView, 0, len(questions))
	for _, question := range questions {
		views = append(views, response_models.QuestionView{
			ID:       question.ID,
			Category: question.CategoryID,
			Prompt:   question.Prompt,
			MinValue: question.Domain.Min,
			MaxValue: question.Domain.Max,
			Phase:    question.Phase,
		})
	}
	return views
}

func answeredSet(answers []db_models.SessionAnswer) assessment.AnswerSet {
	set := make(assessment.AnswerSet, len(answers))
	for _, a := range answers {
		set[a.QuestionSlug] = a.Value
	}
	return set
}

func unanswered(questions []assessment.Question, answered assessment.AnswerSet) []assessment.Question {
	var open []assessment.Question
	for _, question := range questions {
		if _, ok := answered[question.ID]; !ok {
			open = append(open, question)
		}
	}
	return open
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
