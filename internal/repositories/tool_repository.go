package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mindwijzer/internal/assessment"
	"mindwijzer/internal/models/db_models"
	mem "mindwijzer/pkg/memcache"
)

type ToolRepositoryInterface interface {
	ListTools(ctx context.Context, page int, pageSize int) ([]db_models.Tool, error)
	GetToolBySlug(ctx context.Context, slug string) (*db_models.Tool, error)
	// LoadCatalog returns the validated engine view of the tool catalog.
	LoadCatalog(ctx context.Context) (assessment.ToolCatalog, error)
	// LoadMatrix returns a quiz's recommendation matrix with rows in
	// admin-defined order. Tool slugs are not checked against the
	// catalog here; drift is resolved at recommendation time.
	LoadMatrix(ctx context.Context, quizID uuid.UUID) (assessment.RecommendationMatrix, error)
	FlushCache()
}

func NewToolRepository(db *gorm.DB) ToolRepositoryInterface {
	return &toolRepository{
		db:           db,
		catalogCache: mem.NewCatalogCache[assessment.ToolCatalog](),
		matrixCache:  mem.NewCatalogCache[assessment.RecommendationMatrix](),
	}
}

type toolRepository struct {
	db           *gorm.DB
	catalogCache *mem.CatalogCache[assessment.ToolCatalog]
	matrixCache  *mem.CatalogCache[assessment.RecommendationMatrix]
}

const toolCatalogCacheKey = "tool-catalog"

func (r *toolRepository) ListTools(ctx context.Context, page int, pageSize int) ([]db_models.Tool, error) {
	var tools []db_models.Tool
	err := r.db.WithContext(ctx).
		Order("slug ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tools).Error
	if err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *toolRepository) GetToolBySlug(ctx context.Context, slug string) (*db_models.Tool, error) {
	var tool db_models.Tool
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tool).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tool, nil
}

func (r *toolRepository) LoadCatalog(ctx context.Context) (assessment.ToolCatalog, error) {
	if catalog, ok := r.catalogCache.Get(toolCatalogCacheKey); ok {
		return catalog, nil
	}

	var rows []db_models.Tool
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	catalog := make(assessment.ToolCatalog, len(rows))
	for _, row := range rows {
		catalog[row.Slug] = assessment.Tool{
			ID:          row.Slug,
			Title:       row.Title,
			Description: row.Description,
			Tags:        row.Tags,
			Icon:        assessment.IconKey(row.Icon),
			Reasoning: assessment.TierTexts{
				High:   row.ReasoningHigh,
				Medium: row.ReasoningMedium,
				Low:    row.ReasoningLow,
			},
		}
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	r.catalogCache.Set(toolCatalogCacheKey, catalog, catalogCacheTTL)
	return catalog, nil
}

func (r *toolRepository) LoadMatrix(ctx context.Context, quizID uuid.UUID) (assessment.RecommendationMatrix, error) {
	if matrix, ok := r.matrixCache.Get(quizID.String()); ok {
		return matrix, nil
	}

	var rows []db_models.RecommendationEntry
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("category_slug ASC, tier ASC, position ASC").
		Find(&rows).Error
	if err != nil {
		return assessment.RecommendationMatrix{}, err
	}

	matrix := assessment.RecommendationMatrix{
		Entries: make(map[string]assessment.TierLists),
	}
	for _, row := range rows {
		lists := matrix.Entries[row.CategorySlug]
		switch assessment.Tier(row.Tier) {
		case assessment.TierHigh:
			lists.High = append(lists.High, row.ToolSlug)
		case assessment.TierMedium:
			lists.Medium = append(lists.Medium, row.ToolSlug)
		case assessment.TierLow:
			lists.Low = append(lists.Low, row.ToolSlug)
		}
		matrix.Entries[row.CategorySlug] = lists
	}

	r.matrixCache.Set(quizID.String(), matrix, catalogCacheTTL)
	return matrix, nil
}

func (r *toolRepository) FlushCache() {
	r.catalogCache.Flush()
	r.matrixCache.Flush()
}
