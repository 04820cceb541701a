package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"mindwijzer/internal/models/db_models"
)

type IToolEmbeddingRepository interface {
	GetToolsByVector(vector pgvector.Vector, limit int) ([]ToolEmbeddingHit, error)
	UpsertToolEmbedding(embedding db_models.ToolEmbedding) error
}

// ToolEmbeddingHit pairs an embedding row with its cosine similarity.
type ToolEmbeddingHit struct {
	db_models.ToolEmbedding
	Similarity float64 `gorm:"column:similarity"`
}

type ToolEmbeddingRepository struct {
	db *gorm.DB
}

func NewToolEmbeddingRepository(db *gorm.DB) IToolEmbeddingRepository {
	return &ToolEmbeddingRepository{db: db}
}

func (r *ToolEmbeddingRepository) GetToolsByVector(vector pgvector.Vector, limit int) ([]ToolEmbeddingHit, error) {
	if limit <= 0 || limit > 50 {
		limit = 15
	}

	var results []ToolEmbeddingHit

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM tool_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.5
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ToolEmbeddingRepository) UpsertToolEmbedding(embedding db_models.ToolEmbedding) error {
	return r.db.Save(&embedding).Error
}
