package response_models

// QuestionView is one question as presented to the client. Weights and
// branching internals stay server-side.
type QuestionView struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Prompt    string `json:"prompt"`
	MinValue  int    `json:"min_value"`
	MaxValue  int    `json:"max_value"`
	Phase     int    `json:"phase"`
}

// QuestionSetResponse is the current phase's question set for a session.
type QuestionSetResponse struct {
	SessionID  string         `json:"session_id"`
	Phase      int            `json:"phase"`
	Questions  []QuestionView `json:"questions"`
	IsComplete bool           `json:"is_complete"`
}

// PhaseResultResponse is returned after a phase-1 submission: which
// deep-dive categories were selected and the questions to show next.
type PhaseResultResponse struct {
	SessionID          string         `json:"session_id"`
	SelectedCategories []string       `json:"selected_categories"`
	Phase              int            `json:"phase"`
	Questions          []QuestionView `json:"questions"`
	IsComplete         bool           `json:"is_complete"`
}

type CategoryScoreView struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Score       float64 `json:"score"`
	Band        string  `json:"band"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Tip         string  `json:"tip,omitempty"`
}

type ToolView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Tags        []string `json:"tags,omitempty"`
	Reasoning   string   `json:"reasoning,omitempty"`
}

type RecommendationView struct {
	High   []ToolView `json:"high"`
	Medium []ToolView `json:"medium"`
	Low    []ToolView `json:"low"`
}

// ReportResponse is the full report for a completed session. Narrative is
// filled in asynchronously by the analysis provider; NarrativeReady tells
// the client whether to poll again.
type ReportResponse struct {
	SessionID       string              `json:"session_id"`
	QuizID          string              `json:"quiz_id"`
	Perspective     string              `json:"perspective"`
	Scores          []CategoryScoreView `json:"scores"`
	Recommendations RecommendationView  `json:"recommendations"`
	Narrative       string              `json:"narrative,omitempty"`
	NarrativeReady  bool                `json:"narrative_ready"`
}
