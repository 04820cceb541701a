package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Tool is one recommendable aid from the tool catalog.
type Tool struct {
	BaseModel
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Icon        string
	Tags        pq.StringArray `gorm:"type:text[]"`

	// Why this tool is relevant at each score tier.
	ReasoningHigh   string `gorm:"type:text"`
	ReasoningMedium string `gorm:"type:text"`
	ReasoningLow    string `gorm:"type:text"`
}

// RecommendationEntry is one row of the category → tier → tool matrix.
// The matrix may reference tool slugs that no longer exist in the tools
// table; that drift is tolerated and dropped at recommendation time.
type RecommendationEntry struct {
	BaseModel
	QuizID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CategorySlug string    `gorm:"not null"`
	Tier         string    `gorm:"not null"` // high | medium | low
	ToolSlug     string    `gorm:"not null"`
	Position     int       `gorm:"not null"`
}
