package assessment

// TierFor places a canonical-scale score in a recommendation tier:
// high above t.High, low up to and including t.Low, medium in between.
func TierFor(score float64, t TierThresholds) Tier {
	switch {
	case score > t.High:
		return TierHigh
	case score <= t.Low:
		return TierLow
	default:
		return TierMedium
	}
}

var tierRank = map[Tier]int{TierLow: 0, TierMedium: 1, TierHigh: 2}

// Recommend matches a score vector against the recommendation matrix and
// resolves tool ids through the catalog. Per category present in the
// vector, the category's tier is determined by the matrix thresholds and
// the matrix's tool list for that (category, tier) is unioned into the
// matching result bucket.
//
// A tool qualifying at several tiers across categories lands exactly once,
// in its highest tier. Tool ids missing from the catalog are dropped
// silently; matrix and catalog are maintained by separate admin flows and
// drift between them is tolerated. Bucket order is category declaration
// order, then matrix order — never score magnitude.
func Recommend(quiz *Quiz, scores ScoreVector, matrix RecommendationMatrix, catalog ToolCatalog) RecommendationResult {
	thresholds := matrix.EffectiveThresholds()

	// First pass: the best tier each tool id qualifies for.
	bestTier := make(map[string]Tier)
	for _, category := range quiz.Categories {
		score, ok := scores[category.ID]
		if !ok {
			continue
		}
		tier := TierFor(score, thresholds)
		for _, toolID := range matrix.Entries[category.ID].For(tier) {
			if current, ok := bestTier[toolID]; !ok || tierRank[tier] > tierRank[current] {
				bestTier[toolID] = tier
			}
		}
	}

	// Second pass: place each tool at its first occurrence in its best
	// tier, preserving declaration-then-matrix order within the bucket.
	var result RecommendationResult
	placed := make(map[string]bool, len(bestTier))
	for _, category := range quiz.Categories {
		score, ok := scores[category.ID]
		if !ok {
			continue
		}
		tier := TierFor(score, thresholds)
		for _, toolID := range matrix.Entries[category.ID].For(tier) {
			if placed[toolID] || bestTier[toolID] != tier {
				continue
			}
			tool, ok := catalog[toolID]
			if !ok {
				continue // catalog drift
			}
			placed[toolID] = true
			switch tier {
			case TierHigh:
				result.High = append(result.High, tool)
			case TierMedium:
				result.Medium = append(result.Medium, tool)
			default:
				result.Low = append(result.Low, tool)
			}
		}
	}
	return result
}
