package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mindwijzer/internal/models/request_models"
	"mindwijzer/internal/services"
	"mindwijzer/pkg/utils"
)

type AssessmentController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewAssessmentController(assessmentService services.AssessmentServiceInterface) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// StartAssessment godoc
// @Summary Start a new assessment session
// @Description Opens a session for a published quiz and returns the phase-1 question set
// @Tags Assessment
// @Accept json
// @Produce json
// @Param request body request_models.StartAssessmentRequest true "Quiz to start"
// @Success 200 {object} response_models.QuestionSetResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /assessments [post]
func (a *AssessmentController) StartAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.StartAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := a.assessmentService.StartSession(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Assessment started")
}

// GetQuestions godoc
// @Summary Get the current question set
// @Description Returns the unanswered questions for the session's current phase
// @Tags Assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.QuestionSetResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /assessments/{sessionId}/questions [get]
func (a *AssessmentController) GetQuestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "sessionId")
	if !ok {
		return
	}

	result, err := a.assessmentService.GetCurrentQuestions(c.Request.Context(), userID, sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Questions fetched successfully")
}

// SubmitAnswers godoc
// @Summary Submit answers for the current phase
// @Description Appends answers; once phase 1 is complete the deep-dive categories are selected and their questions returned
// @Tags Assessment
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.SubmitAnswersRequest true "Answers"
// @Success 200 {object} response_models.PhaseResultResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /assessments/{sessionId}/answers [post]
func (a *AssessmentController) SubmitAnswers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "sessionId")
	if !ok {
		return
	}

	var req request_models.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := a.assessmentService.SubmitAnswers(c.Request.Context(), userID, sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Answers recorded")
}

// CompleteAssessment godoc
// @Summary Complete a session and compute the result
// @Description Scores the session, seals it and returns the report; the narrative is generated asynchronously
// @Tags Assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ReportResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /assessments/{sessionId}/complete [post]
func (a *AssessmentController) CompleteAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "sessionId")
	if !ok {
		return
	}

	result, err := a.assessmentService.CompleteSession(c.Request.Context(), userID, sessionID, c.GetString("email"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Assessment completed")
}

// GetReport godoc
// @Summary Get the report of a completed session
// @Tags Assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ReportResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /assessments/{sessionId}/report [get]
func (a *AssessmentController) GetReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "sessionId")
	if !ok {
		return
	}

	result, err := a.assessmentService.GetReport(c.Request.Context(), userID, sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Report fetched successfully")
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or missing user identity")
		return uuid.Nil, false
	}
	return userID, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
