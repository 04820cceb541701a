package assessment

// BandFor places a canonical-scale score in its qualitative band. The
// boundaries are half-open on the lower side and applied ascending, so a
// score exactly on a boundary lands in the band above it.
func BandFor(score float64, thresholds BandThresholds) Band {
	switch {
	case score < thresholds.VeryLow:
		return BandVeryLow
	case score < thresholds.Low:
		return BandLow
	case score < thresholds.Medium:
		return BandMedium
	case score < thresholds.High:
		return BandHigh
	default:
		return BandVeryHigh
	}
}

// Interpret maps one category score to its band plus the report text for
// the requested perspective. Fallback chain for text:
//
//   - a category without templates for the requested perspective uses its
//     self phrasing;
//   - a category without any templates uses the generic standaard entry;
//   - very_low and very_high fall back to the low and high texts when a
//     category collapses the extremes.
//
// Scores are never mutated; unknown categories interpret against the
// default thresholds and the standaard template.
func Interpret(quiz *Quiz, templates TemplateSet, categoryID string, score float64, perspective Perspective) Interpretation {
	thresholds := DefaultBandThresholds
	if category, ok := quiz.CategoryByID(categoryID); ok && category.Bands != nil {
		thresholds = *category.Bands
	}
	band := BandFor(score, thresholds)

	text, ok := lookupBandText(templates, categoryID, perspective, band)
	if !ok {
		text, _ = lookupBandText(templates, StandardTemplateID, perspective, band)
	}

	return Interpretation{
		CategoryID:  categoryID,
		Band:        band,
		Title:       text.Title,
		Description: text.Description,
		Tip:         text.Tip,
	}
}

func lookupBandText(templates TemplateSet, categoryID string, perspective Perspective, band Band) (BandText, bool) {
	categoryTemplates, ok := templates[categoryID]
	if !ok {
		return BandText{}, false
	}
	texts, ok := categoryTemplates[perspective]
	if !ok {
		texts, ok = categoryTemplates[PerspectiveSelf]
		if !ok {
			return BandText{}, false
		}
	}
	if text, ok := texts[band]; ok {
		return text, true
	}
	// Collapsed extremes: very_low reads as low, very_high as high.
	switch band {
	case BandVeryLow:
		if text, ok := texts[BandLow]; ok {
			return text, true
		}
	case BandVeryHigh:
		if text, ok := texts[BandHigh]; ok {
			return text, true
		}
	}
	return BandText{}, false
}
