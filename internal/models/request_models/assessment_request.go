package request_models

// StartAssessmentRequest opens a new session for a published quiz.
type StartAssessmentRequest struct {
	QuizID      string `json:"quiz_id" binding:"required"`
	Perspective string `json:"perspective"` // "self" (default) or "parent"
}

type AnswerPayload struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      int    `json:"value" binding:"required"`
}

// SubmitAnswersRequest carries the answers for the session's current
// phase. Answers are append-only; re-answering a question in the same
// session is rejected.
type SubmitAnswersRequest struct {
	Answers []AnswerPayload `json:"answers" binding:"required"`
}
