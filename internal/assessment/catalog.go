package assessment

import (
	"fmt"
)

// IconKey names an icon in the presentation layer's closed icon set.
// Keys are validated when a catalog is loaded so a typo in admin data
// surfaces as a load error instead of a silent UI fallback.
type IconKey string

const (
	IconFocus    IconKey = "focus"
	IconEnergy   IconKey = "energy"
	IconSensory  IconKey = "sensory"
	IconPlanning IconKey = "planning"
	IconSocial   IconKey = "social"
	IconEmotion  IconKey = "emotion"
	IconTool     IconKey = "tool"
	IconDefault  IconKey = "default"
)

var knownIcons = map[IconKey]bool{
	IconFocus:    true,
	IconEnergy:   true,
	IconSensory:  true,
	IconPlanning: true,
	IconSocial:   true,
	IconEmotion:  true,
	IconTool:     true,
	IconDefault:  true,
}

// ValidIcon reports whether k is part of the closed icon registry.
// The empty key is allowed and rendered as IconDefault.
func ValidIcon(k IconKey) bool {
	return k == "" || knownIcons[k]
}

// Validate checks a quiz definition for internal consistency. It is meant
// to run once at catalog load; the scoring and branching paths assume a
// validated quiz.
func (q *Quiz) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quiz has no id")
	}
	if len(q.Categories) == 0 {
		return fmt.Errorf("quiz %s: no categories", q.ID)
	}

	categoryDomain := make(map[string]ValueDomain)
	seenCategories := make(map[string]bool, len(q.Categories))
	for _, c := range q.Categories {
		if c.ID == "" {
			return fmt.Errorf("quiz %s: category with empty id", q.ID)
		}
		if seenCategories[c.ID] {
			return fmt.Errorf("quiz %s: duplicate category %s", q.ID, c.ID)
		}
		seenCategories[c.ID] = true
		if !ValidIcon(c.Icon) {
			return fmt.Errorf("quiz %s: category %s: icon %q not in registry", q.ID, c.ID, c.Icon)
		}
		if c.Bands != nil {
			b := *c.Bands
			if !(b.VeryLow < b.Low && b.Low < b.Medium && b.Medium < b.High) {
				return fmt.Errorf("quiz %s: category %s: band thresholds not ascending", q.ID, c.ID)
			}
		}
	}

	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %s: no questions", q.ID)
	}
	seenQuestions := make(map[string]bool, len(q.Questions))
	for _, question := range q.Questions {
		if question.ID == "" {
			return fmt.Errorf("quiz %s: question with empty id", q.ID)
		}
		if seenQuestions[question.ID] {
			return fmt.Errorf("quiz %s: duplicate question %s", q.ID, question.ID)
		}
		seenQuestions[question.ID] = true
		if !seenCategories[question.CategoryID] {
			return &UnknownCategoryError{CategoryID: question.CategoryID}
		}
		if question.Weight <= 0 {
			return fmt.Errorf("quiz %s: question %s: weight must be positive", q.ID, question.ID)
		}
		if question.Phase != 1 && question.Phase != 2 {
			return fmt.Errorf("quiz %s: question %s: phase must be 1 or 2", q.ID, question.ID)
		}
		if question.Domain.Min >= question.Domain.Max {
			return fmt.Errorf("quiz %s: question %s: empty answer domain", q.ID, question.ID)
		}
		// The weighted mean is taken over raw values and rescaled once per
		// category, so all questions of a category must share one domain.
		if d, ok := categoryDomain[question.CategoryID]; ok {
			if d != question.Domain {
				return fmt.Errorf("quiz %s: category %s: mixed answer domains", q.ID, question.CategoryID)
			}
		} else {
			categoryDomain[question.CategoryID] = question.Domain
		}
	}

	return nil
}

// ValidateTemplates checks a template set against a quiz definition.
// The reserved standaard entry is always allowed.
func (q *Quiz) ValidateTemplates(templates TemplateSet) error {
	for categoryID := range templates {
		if categoryID == StandardTemplateID {
			continue
		}
		if _, ok := q.CategoryByID(categoryID); !ok {
			return &UnknownCategoryError{CategoryID: categoryID}
		}
	}
	return nil
}

// ValidateCatalog checks the tool catalog's own invariants. Matrix drift
// (ids in a recommendation matrix that have no tool here) is deliberately
// not checked: the two catalogs are edited by different admin flows.
func (c ToolCatalog) Validate() error {
	for id, tool := range c {
		if tool.ID == "" || tool.ID != id {
			return fmt.Errorf("tool catalog: entry %q has mismatched id %q", id, tool.ID)
		}
		if !ValidIcon(tool.Icon) {
			return fmt.Errorf("tool %s: icon %q not in registry", id, tool.Icon)
		}
	}
	return nil
}

// EffectiveThresholds resolves the matrix's tier thresholds, falling back
// to the defaults when the matrix carries none.
func (m RecommendationMatrix) EffectiveThresholds() TierThresholds {
	if m.Thresholds == (TierThresholds{}) {
		return DefaultTierThresholds
	}
	return m.Thresholds
}
