package controllers

import (
	"github.com/gin-gonic/gin"

	"mindwijzer/internal/repositories"
	"mindwijzer/internal/services"
	"mindwijzer/pkg/utils"
)

type AdminController struct {
	dashboardService services.DashboardServiceInterface
	toolService      services.ToolServiceInterface
	quizRepo         repositories.QuizRepositoryInterface
	toolRepo         repositories.ToolRepositoryInterface
}

func NewAdminController(
	dashboardService services.DashboardServiceInterface,
	toolService services.ToolServiceInterface,
	quizRepo repositories.QuizRepositoryInterface,
	toolRepo repositories.ToolRepositoryInterface,
) *AdminController {
	return &AdminController{
		dashboardService: dashboardService,
		toolService:      toolService,
		quizRepo:         quizRepo,
		toolRepo:         toolRepo,
	}
}

// GetQuizDashboard godoc
// @Summary Aggregated results for a quiz
// @Description Sessions started/completed plus per-category mean score and band distribution
// @Tags Admin
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} response_models.QuizDashboard
// @Security BearerAuth
// @Router /admin/dashboard/{quizId} [get]
func (a *AdminController) GetQuizDashboard(c *gin.Context) {
	dashboard, err := a.dashboardService.GetQuizDashboard(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}

// ReloadCatalog godoc
// @Summary Drop the in-memory quiz and tool caches
// @Description Forces the next request to re-read and re-validate catalog data from the database
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/catalog/reload [post]
func (a *AdminController) ReloadCatalog(c *gin.Context) {
	a.quizRepo.FlushCache()
	a.toolRepo.FlushCache()
	utils.RespondSuccess(c, nil, "Catalog caches flushed")
}

// ReindexTool godoc
// @Summary Recompute a tool's search embedding
// @Tags Admin
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/tools/{slug}/reindex [post]
func (a *AdminController) ReindexTool(c *gin.Context) {
	if err := a.toolService.ReindexTool(c.Request.Context(), c.Param("slug")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tool reindexed")
}
