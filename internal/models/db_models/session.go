package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AssessmentSession is one user's run through a quiz. Answers are
// append-only while the session is open; once a SessionResult exists the
// session is sealed and rejects further writes.
type AssessmentSession struct {
	BaseModel
	QuizID      uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Perspective string    `gorm:"not null"` // self | parent
	Phase       int       `gorm:"default:1"`

	// Category slugs selected for the phase-2 deep-dive, set after the
	// phase-1 answers are in.
	SelectedCategories pq.StringArray `gorm:"type:text[]"`

	CompletedAt int64

	Answers []SessionAnswer `gorm:"foreignKey:SessionID"`
	Result  *SessionResult  `gorm:"foreignKey:SessionID"`
}

type SessionAnswer struct {
	BaseModel
	SessionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_question"`
	QuestionSlug string    `gorm:"not null;uniqueIndex:idx_session_question"`
	Value        int       `gorm:"not null"`
}

// SessionResult is the write-once scoring snapshot: score vector, bands
// and recommendation buckets as computed at completion time, plus the
// narrative once the external analysis provider delivers it.
type SessionResult struct {
	BaseModel
	SessionID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	ScoresJSON         string `gorm:"type:jsonb;not null"`
	BandsJSON          string `gorm:"type:jsonb;not null"`
	RecommendationJSON string `gorm:"type:jsonb;not null"`

	Narrative      string `gorm:"type:text"`
	NarrativeReady bool
}
