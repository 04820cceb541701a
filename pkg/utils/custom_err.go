package utils

import "errors"

var (
	ErrQuizNotFound           = errors.New("quiz not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrToolNotFound           = errors.New("tool not found")
	ErrSessionSealed          = errors.New("session already scored")
	ErrDuplicateAnswer        = errors.New("question already answered in this session")
	ErrWrongPhase             = errors.New("answers do not belong to the session's current phase")
	ErrNotSessionOwner        = errors.New("session belongs to another user")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("analysis provider returned an unexpected response")
)
