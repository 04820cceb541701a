package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindwijzer/internal/assessment"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service and engine errors onto HTTP statuses.
// Engine errors are never retried here; an incomplete session is the
// caller's cue to resume the questionnaire, and an invalid answer value
// is a data bug that must surface as-is, never be clamped.
func HandleServiceError(c *gin.Context, err error) {
	var (
		incomplete   *assessment.IncompleteSessionError
		invalidValue *assessment.InvalidAnswerValueError
		unknownCat   *assessment.UnknownCategoryError
		unknownQ     *assessment.UnknownQuestionError
	)

	switch {
	case errors.As(err, &incomplete):
		RespondError(c, http.StatusConflict, incomplete.Error())
	case errors.As(err, &invalidValue):
		RespondError(c, http.StatusUnprocessableEntity, invalidValue.Error())
	case errors.As(err, &unknownCat):
		log.Printf("Malformed catalog: %v", err)
		RespondError(c, http.StatusInternalServerError, "Quiz configuration is invalid")
	case errors.As(err, &unknownQ):
		RespondError(c, http.StatusUnprocessableEntity, unknownQ.Error())
	case errors.Is(err, ErrQuizNotFound):
		RespondError(c, http.StatusNotFound, "Quiz not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrToolNotFound):
		RespondError(c, http.StatusNotFound, "Tool not found")
	case errors.Is(err, ErrSessionSealed):
		RespondError(c, http.StatusConflict, "Session is already scored")
	case errors.Is(err, ErrDuplicateAnswer):
		RespondError(c, http.StatusConflict, "Question already answered")
	case errors.Is(err, ErrWrongPhase):
		RespondError(c, http.StatusConflict, "Answer does not belong to the current phase")
	case errors.Is(err, ErrNotSessionOwner):
		RespondError(c, http.StatusForbidden, "Session belongs to another user")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		log.Printf("Analysis provider error: %v", err)
		RespondError(c, http.StatusBadGateway, "Analysis provider is unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
