package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindwijzer/internal/models/request_models"
	"mindwijzer/internal/services"
	"mindwijzer/pkg/utils"
)

type ToolsController struct {
	toolService services.ToolServiceInterface
}

func NewToolsController(toolService services.ToolServiceInterface) *ToolsController {
	return &ToolsController{
		toolService: toolService,
	}
}

// ListTools godoc
// @Summary List the tool catalog
// @Tags Tools
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.ToolView
// @Router /tools [get]
func (t *ToolsController) ListTools(c *gin.Context) {
	page, pageSize, ok := paginationParams(c)
	if !ok {
		return
	}

	tools, err := t.toolService.ListTools(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tools, "Tools fetched successfully")
}

// GetTool godoc
// @Summary Get one tool by slug
// @Tags Tools
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} response_models.ToolView
// @Failure 404 {object} utils.APIResponse
// @Router /tools/{slug} [get]
func (t *ToolsController) GetTool(c *gin.Context) {
	tool, err := t.toolService.GetToolBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tool, "Tool fetched successfully")
}

// SearchTools godoc
// @Summary Semantic search over the tool catalog
// @Description Embeds the query text and ranks tools by cosine similarity
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body request_models.ToolSearchRequest true "Search query"
// @Success 200 {array} response_models.ToolSearchHit
// @Router /tools/search [post]
func (t *ToolsController) SearchTools(c *gin.Context) {
	var req request_models.ToolSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hits, err := t.toolService.SearchTools(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hits, "Search completed")
}
