package services

import (
	"context"
	"log"

	"mindwijzer/internal/models/db_models"
	"mindwijzer/internal/models/response_models"
	"mindwijzer/internal/repositories"
	"mindwijzer/pkg/utils"
)

type ToolServiceInterface interface {
	ListTools(ctx context.Context, page int, pageSize int) ([]response_models.ToolView, error)
	GetToolBySlug(ctx context.Context, slug string) (*response_models.ToolView, error)
	SearchTools(ctx context.Context, query string, limit int) ([]response_models.ToolSearchHit, error)
	ReindexTool(ctx context.Context, slug string) error
}

type ToolService struct {
	toolRepo      repositories.ToolRepositoryInterface
	embeddingRepo repositories.IToolEmbeddingRepository
	analysis      utils.AnalysisClientInterface
}

func NewToolService(
	toolRepo repositories.ToolRepositoryInterface,
	embeddingRepo repositories.IToolEmbeddingRepository,
	analysis utils.AnalysisClientInterface,
) ToolServiceInterface {
	return &ToolService{
		toolRepo:      toolRepo,
		embeddingRepo: embeddingRepo,
		analysis:      analysis,
	}
}

func (s *ToolService) ListTools(ctx context.Context, page int, pageSize int) ([]response_models.ToolView, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	tools, err := s.toolRepo.ListTools(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.ToolView, 0, len(tools))
	for _, tool := range tools {
		views = append(views, toolView(tool))
	}
	return views, nil
}

func (s *ToolService) GetToolBySlug(ctx context.Context, slug string) (*response_models.ToolView, error) {
	tool, err := s.toolRepo.GetToolBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tool == nil {
		return nil, utils.ErrToolNotFound
	}
	view := toolView(*tool)
	return &view, nil
}

// SearchTools embeds the query and ranks the catalog by cosine
// similarity. Hits below the repository's similarity floor never show up,
// so an off-topic query can legitimately return an empty list.
func (s *ToolService) SearchTools(ctx context.Context, query string, limit int) ([]response_models.ToolSearchHit, error) {
	vector, err := s.analysis.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("embedding query failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	hits, err := s.embeddingRepo.GetToolsByVector(vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.ToolSearchHit, 0, len(hits))
	for _, hit := range hits {
		results = append(results, response_models.ToolSearchHit{
			Tool: response_models.ToolView{
				ID:          hit.ToolSlug,
				Title:       hit.Title,
				Description: hit.Description,
				Tags:        hit.Tags,
			},
			Similarity: hit.Similarity,
		})
	}
	return results, nil
}

// ReindexTool recomputes one tool's embedding from its current title and
// description. Called from the admin surface after catalog edits.
func (s *ToolService) ReindexTool(ctx context.Context, slug string) error {
	tool, err := s.toolRepo.GetToolBySlug(ctx, slug)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if tool == nil {
		return utils.ErrToolNotFound
	}

	vector, err := s.analysis.GetEmbedding(ctx, tool.Title+"\n"+tool.Description)
	if err != nil {
		return utils.ErrUnexpectedBehaviorOfAI
	}

	return s.embeddingRepo.UpsertToolEmbedding(db_models.ToolEmbedding{
		ToolSlug:    tool.Slug,
		Title:       tool.Title,
		Description: tool.Description,
		Tags:        tool.Tags,
		Embedding:   vector,
	})
}

func toolView(tool db_models.Tool) response_models.ToolView {
	return response_models.ToolView{
		ID:          tool.Slug,
		Title:       tool.Title,
		Description: tool.Description,
		Icon:        tool.Icon,
		Tags:        tool.Tags,
	}
}
