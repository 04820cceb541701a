package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a user's rating of the recommendations they received for
// one completed session.
type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	SessionID uuid.UUID `gorm:"type:uuid;index;not null"`
	Comment   string    `gorm:"type:text"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
