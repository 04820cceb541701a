package request_models

// ToolSearchRequest is a free-text semantic search over the tool catalog.
type ToolSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
