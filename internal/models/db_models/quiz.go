package db_models

import (
	"github.com/google/uuid"
)

// Quiz is a published quiz definition. Rows are written by the admin
// workflow and read-only for this service; the engine consumes the
// mapped assessment.Quiz, never these rows.
type Quiz struct {
	BaseModel
	Title              string `gorm:"not null"`
	Audience           string `gorm:"not null"` // teen | parent | adult
	ResultType         string `gorm:"not null"` // score_based | personality_types | open_ended
	RelevanceThreshold float64
	IsPublished        bool `gorm:"index"`

	Categories []QuizCategory `gorm:"foreignKey:QuizID"`
	Questions  []QuizQuestion `gorm:"foreignKey:QuizID"`
	Templates  []InterpretationTemplate `gorm:"foreignKey:QuizID"`
}

// QuizCategory is one trait axis of a quiz. Slug is the stable id used in
// questions, templates and the recommendation matrix; Position preserves
// declaration order for tie-breaks.
type QuizCategory struct {
	BaseModel
	QuizID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Slug     string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Icon     string
	Position int `gorm:"not null"`

	// Optional band threshold override, all four set or all null.
	BandVeryLow *float64
	BandLow     *float64
	BandMedium  *float64
	BandHigh    *float64
}

type QuizQuestion struct {
	BaseModel
	QuizID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Slug         string    `gorm:"not null"`
	CategorySlug string    `gorm:"not null"`
	Prompt       string    `gorm:"type:text;not null"`
	Weight       float64   `gorm:"default:1"`
	Phase        int       `gorm:"not null;check:phase IN (1,2)"`
	DomainMin    int       `gorm:"default:1"`
	DomainMax    int       `gorm:"default:4"`
	Position     int       `gorm:"not null"`
}

// InterpretationTemplate is one band's report text for a category and
// perspective. CategorySlug "standaard" is the generic fallback.
type InterpretationTemplate struct {
	BaseModel
	QuizID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CategorySlug string    `gorm:"not null"`
	Perspective  string    `gorm:"not null"` // self | parent
	Band         string    `gorm:"not null"` // very_low .. very_high
	Title        string
	Description  string `gorm:"type:text"`
	Tip          string `gorm:"type:text"`
}
