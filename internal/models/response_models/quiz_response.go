package response_models

// QuizSummary is the catalog listing view of a published quiz.
type QuizSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Audience      string `json:"audience"`
	ResultType    string `json:"result_type"`
	CategoryCount int    `json:"category_count"`
	QuestionCount int    `json:"question_count"`
}

type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type QuizDetail struct {
	QuizSummary
	Categories []CategoryView `json:"categories"`
}
