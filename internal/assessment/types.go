// Package assessment implements the adaptive self-assessment engine:
// two-phase branching questionnaires, weighted per-category scoring on a
// canonical 0-8 scale, qualitative band interpretation and tiered tool
// recommendations. Everything in this package is pure and synchronous;
// catalogs come in through plain structs, storage and transport live in
// the service layer.
package assessment

// Audience is the target group a quiz was written for.
type Audience string

const (
	AudienceTeen   Audience = "teen"
	AudienceParent Audience = "parent"
	AudienceAdult  Audience = "adult"
)

// Perspective selects the phrasing of a report: the person who filled in
// the quiz reading about themselves, or a parent reading about their child.
type Perspective string

const (
	PerspectiveSelf   Perspective = "self"
	PerspectiveParent Perspective = "parent"
)

type ResultType string

const (
	ResultScoreBased       ResultType = "score_based"
	ResultPersonalityTypes ResultType = "personality_types"
	ResultOpenEnded        ResultType = "open_ended"
)

// Canonical score scale. Raw answers live in a per-question ordinal domain
// (typically 1-4) and are rescaled onto [ScaleMin, ScaleMax].
const (
	ScaleMin = 0.0
	ScaleMax = 8.0
)

// ValueDomain is the inclusive ordinal range an answer value must lie in.
type ValueDomain struct {
	Min int
	Max int
}

func (d ValueDomain) Contains(v int) bool {
	return v >= d.Min && v <= d.Max
}

// DefaultDomain is the 1-4 scale used by all published quizzes so far.
var DefaultDomain = ValueDomain{Min: 1, Max: 4}

type Question struct {
	ID         string
	CategoryID string
	Prompt     string
	Weight     float64 // positive, 1 when unset in the catalog
	Phase      int     // 1 = always asked, 2 = conditional deep-dive
	Domain     ValueDomain
}

// Category is one trait axis a quiz measures, e.g. "Aandacht & Focus".
type Category struct {
	ID   string
	Name string
	Icon IconKey
	// Bands overrides the default band thresholds for this category.
	// Nil means DefaultBandThresholds.
	Bands *BandThresholds
}

// Quiz is an immutable published quiz definition. Categories keeps its
// declaration order; tie-breaks and output ordering depend on it.
type Quiz struct {
	ID         string
	Title      string
	Audience   Audience
	ResultType ResultType
	Categories []Category
	Questions  []Question
	// RelevanceThreshold is the provisional score at or above which a
	// category is selected for phase 2. Zero means DefaultRelevanceThreshold.
	RelevanceThreshold float64
}

// DefaultRelevanceThreshold is the medium band lower bound on the
// canonical scale. Branching and interpretation keep independent
// threshold sets on purpose; do not fold them together.
const DefaultRelevanceThreshold = 2.5

// Answer is one raw answer as collected during a session.
type Answer struct {
	QuestionID string
	Value      int
}

// AnswerSet is a session's accumulated answers keyed by question id.
// Insertion order is irrelevant; a question id appears at most once.
type AnswerSet map[string]int

func NewAnswerSet(answers []Answer) AnswerSet {
	set := make(AnswerSet, len(answers))
	for _, a := range answers {
		set[a.QuestionID] = a.Value
	}
	return set
}

// ScoreVector maps category id to its normalized score on the canonical
// scale. Categories without a single answered question have no entry.
type ScoreVector map[string]float64

// Band is the qualitative label attached to a numeric score.
type Band string

const (
	BandVeryLow  Band = "very_low"
	BandLow      Band = "low"
	BandMedium   Band = "medium"
	BandHigh     Band = "high"
	BandVeryHigh Band = "very_high"
)

// BandThresholds are the upper bounds of the four lower bands, applied
// ascending with half-open intervals: score < VeryLow is very_low,
// < Low is low, < Medium is medium, < High is high, anything else very_high.
type BandThresholds struct {
	VeryLow float64
	Low     float64
	Medium  float64
	High    float64
}

var DefaultBandThresholds = BandThresholds{
	VeryLow: 1.5,
	Low:     2.5,
	Medium:  3.5,
	High:    4.5,
}

// Tier is a recommendation relevance bucket.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// TierThresholds split the canonical scale into recommendation tiers:
// high > High, medium in (Low, High], low in [ScaleMin, Low]. These are
// not the interpretation band cut points.
type TierThresholds struct {
	High float64
	Low  float64
}

var DefaultTierThresholds = TierThresholds{High: 5.0, Low: 2.0}

// TierTexts explains a tool's relevance at each score tier.
type TierTexts struct {
	High   string
	Medium string
	Low    string
}

// Tool is one recommendable intervention or aid from the tool catalog.
type Tool struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Icon        IconKey
	Reasoning   TierTexts
}

// ToolCatalog indexes tools by id.
type ToolCatalog map[string]Tool

// TierLists holds the matrix's tool ids for one category, per tier.
type TierLists struct {
	High   []string
	Medium []string
	Low    []string
}

func (l TierLists) For(tier Tier) []string {
	switch tier {
	case TierHigh:
		return l.High
	case TierMedium:
		return l.Medium
	default:
		return l.Low
	}
}

// RecommendationMatrix maps category id to the tool ids suggested at each
// tier. The matrix is maintained separately from the tool catalog, so ids
// here may not exist in the catalog; those are dropped during Recommend.
type RecommendationMatrix struct {
	Thresholds TierThresholds // zero value means DefaultTierThresholds
	Entries    map[string]TierLists
}

// RecommendationResult holds the matched tools per tier. A tool appears
// in exactly one bucket, its highest qualifying tier across categories.
type RecommendationResult struct {
	High   []Tool
	Medium []Tool
	Low    []Tool
}

// BandText is the human-readable content of one interpretation band.
type BandText struct {
	Title       string
	Description string
	Tip         string
}

type BandTexts map[Band]BandText

// CategoryTemplates holds a category's band texts per perspective.
type CategoryTemplates map[Perspective]BandTexts

// TemplateSet maps category id to its interpretation templates. The
// reserved StandardTemplateID entry is the fallback for categories
// without templates of their own.
type TemplateSet map[string]CategoryTemplates

// StandardTemplateID keys the generic "Standaard" template.
const StandardTemplateID = "standaard"

// Interpretation is the qualitative reading of one category score.
type Interpretation struct {
	CategoryID string
	Band       Band
	Title      string
	Description string
	Tip        string
}

func (q *Quiz) CategoryByID(id string) (Category, bool) {
	for _, c := range q.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (q *Quiz) QuestionByID(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// QuestionsForPhase returns the quiz's questions for the given phase in
// declaration order. For phase 2 the result is restricted to the given
// category ids; nil means all categories.
func (q *Quiz) QuestionsForPhase(phase int, categoryIDs []string) []Question {
	var allowed map[string]bool
	if categoryIDs != nil {
		allowed = make(map[string]bool, len(categoryIDs))
		for _, id := range categoryIDs {
			allowed[id] = true
		}
	}

	var out []Question
	for _, question := range q.Questions {
		if question.Phase != phase {
			continue
		}
		if allowed != nil && !allowed[question.CategoryID] {
			continue
		}
		out = append(out, question)
	}
	return out
}

// HasPhaseTwo reports whether any question is a phase-2 deep-dive.
func (q *Quiz) HasPhaseTwo() bool {
	for _, question := range q.Questions {
		if question.Phase == 2 {
			return true
		}
	}
	return false
}
