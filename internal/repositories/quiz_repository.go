package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mindwijzer/internal/assessment"
	"mindwijzer/internal/models/db_models"
	mem "mindwijzer/pkg/memcache"
)

// QuizSnapshot is a validated, engine-ready quiz plus its interpretation
// templates, built once per cache window from the catalog rows.
type QuizSnapshot struct {
	Quiz      *assessment.Quiz
	Templates assessment.TemplateSet
	Record    db_models.Quiz
}

type QuizRepositoryInterface interface {
	ListPublished(ctx context.Context, page int, pageSize int) ([]db_models.Quiz, error)
	// LoadSnapshot returns the validated engine view of a published quiz.
	// Malformed catalog data fails here, at load time, never mid-scoring.
	LoadSnapshot(ctx context.Context, quizID uuid.UUID) (*QuizSnapshot, error)
	FlushCache()
}

const catalogCacheTTL = 5 * time.Minute

func NewQuizRepository(db *gorm.DB) QuizRepositoryInterface {
	return &quizRepository{
		db:    db,
		cache: mem.NewCatalogCache[*QuizSnapshot](),
	}
}

type quizRepository struct {
	db    *gorm.DB
	cache *mem.CatalogCache[*QuizSnapshot]
}

func (r *quizRepository) ListPublished(ctx context.Context, page int, pageSize int) ([]db_models.Quiz, error) {
	var quizzes []db_models.Quiz
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Preload("Categories", orderByPosition).
		Preload("Questions", orderByPosition).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *quizRepository) LoadSnapshot(ctx context.Context, quizID uuid.UUID) (*QuizSnapshot, error) {
	if snapshot, ok := r.cache.Get(quizID.String()); ok {
		return snapshot, nil
	}

	var record db_models.Quiz
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_published = ?", quizID, true).
		Preload("Categories", orderByPosition).
		Preload("Questions", orderByPosition).
		Preload("Templates").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	snapshot, err := buildSnapshot(record)
	if err != nil {
		return nil, err
	}

	r.cache.Set(quizID.String(), snapshot, catalogCacheTTL)
	return snapshot, nil
}

func (r *quizRepository) FlushCache() {
	r.cache.Flush()
}

// buildSnapshot maps catalog rows onto the engine types and validates the
// result. Everything downstream assumes a snapshot that passed here.
func buildSnapshot(record db_models.Quiz) (*QuizSnapshot, error) {
	quiz := &assessment.Quiz{
		ID:                 record.ID.String(),
		Title:              record.Title,
		Audience:           assessment.Audience(record.Audience),
		ResultType:         assessment.ResultType(record.ResultType),
		RelevanceThreshold: record.RelevanceThreshold,
	}

	for _, c := range record.Categories {
		category := assessment.Category{
			ID:   c.Slug,
			Name: c.Name,
			Icon: assessment.IconKey(c.Icon),
		}
		if c.BandVeryLow != nil && c.BandLow != nil && c.BandMedium != nil && c.BandHigh != nil {
			category.Bands = &assessment.BandThresholds{
				VeryLow: *c.BandVeryLow,
				Low:     *c.BandLow,
				Medium:  *c.BandMedium,
				High:    *c.BandHigh,
			}
		}
		quiz.Categories = append(quiz.Categories, category)
	}

	for _, q := range record.Questions {
		weight := q.Weight
		if weight == 0 {
			weight = 1
		}
		quiz.Questions = append(quiz.Questions, assessment.Question{
			ID:         q.Slug,
			CategoryID: q.CategorySlug,
			Prompt:     q.Prompt,
			Weight:     weight,
			Phase:      q.Phase,
			Domain:     assessment.ValueDomain{Min: q.DomainMin, Max: q.DomainMax},
		})
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	templates := make(assessment.TemplateSet)
	for _, t := range record.Templates {
		perspective := assessment.Perspective(t.Perspective)
		band := assessment.Band(t.Band)

		categoryTemplates, ok := templates[t.CategorySlug]
		if !ok {
			categoryTemplates = make(assessment.CategoryTemplates)
			templates[t.CategorySlug] = categoryTemplates
		}
		texts, ok := categoryTemplates[perspective]
		if !ok {
			texts = make(assessment.BandTexts)
			categoryTemplates[perspective] = texts
		}
		texts[band] = assessment.BandText{
			Title:       t.Title,
			Description: t.Description,
			Tip:         t.Tip,
		}
	}
	if err := quiz.ValidateTemplates(templates); err != nil {
		return nil, err
	}

	return &QuizSnapshot{Quiz: quiz, Templates: templates, Record: record}, nil
}
