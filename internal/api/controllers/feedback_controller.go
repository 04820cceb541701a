package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindwijzer/internal/models/request_models"
	"mindwijzer/internal/services"
	"mindwijzer/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback godoc
// @Summary Rate a completed assessment
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.FeedbackRequest true "Feedback"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [post]
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := f.feedbackService.SubmitFeedback(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback submitted")
}

// ListFeedback godoc
// @Summary List submitted feedback
// @Tags Feedback
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} db_models.Feedback
// @Security BearerAuth
// @Router /feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
