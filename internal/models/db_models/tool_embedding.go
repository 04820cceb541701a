package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// ToolEmbedding backs semantic search over the tool catalog. Rows are
// produced offline from each tool's title + description.
type ToolEmbedding struct {
	ToolSlug    string `gorm:"primaryKey;column:tool_slug"`
	Title       string
	Description string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
