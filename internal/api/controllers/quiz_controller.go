package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mindwijzer/internal/services"
	"mindwijzer/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// ListQuizzes godoc
// @Summary List published quizzes
// @Tags Quiz
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.QuizSummary
// @Router /quizzes [get]
func (q *QuizController) ListQuizzes(c *gin.Context) {
	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	quizzes, err := q.quizService.ListQuizzes(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quizzes, "Quizzes fetched successfully")
}

// GetQuizDetail godoc
// @Summary Get a quiz with its categories
// @Tags Quiz
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} response_models.QuizDetail
// @Failure 404 {object} utils.APIResponse
// @Router /quizzes/{quizId} [get]
func (q *QuizController) GetQuizDetail(c *gin.Context) {
	detail, err := q.quizService.GetQuizDetail(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Quiz fetched successfully")
}

func paginationParams(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}
