package response_models

// ToolSearchHit is one semantic search result with its cosine similarity.
type ToolSearchHit struct {
	Tool       ToolView `json:"tool"`
	Similarity float64  `json:"similarity"`
}
