package response_models

// CategoryStats aggregates completed-session scores for one category.
type CategoryStats struct {
	Category         string             `json:"category"`
	MeanScore        float64            `json:"mean_score"`
	BandDistribution map[string]int     `json:"band_distribution"`
}

// QuizDashboard is the admin view of how a quiz performs in the field.
type QuizDashboard struct {
	QuizID            string          `json:"quiz_id"`
	SessionsStarted   int64           `json:"sessions_started"`
	SessionsCompleted int64           `json:"sessions_completed"`
	CompletionRate    float64         `json:"completion_rate"`
	Categories        []CategoryStats `json:"categories"`
}
