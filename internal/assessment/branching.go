package assessment

// SelectPhaseTwo decides which categories get a phase-2 deep-dive based on
// the phase-1 answers. A category is selected when its provisional
// phase-1 score reaches the quiz's relevance threshold. When no category
// reaches it the single highest-scoring category is selected instead, so
// phase 2 is never empty for a two-phase quiz. Ties at the fallback step
// go to the category declared first in the quiz.
//
// The returned ids follow the quiz's category declaration order. For a
// quiz without phase-2 questions the result is nil.
func SelectPhaseTwo(quiz *Quiz, phaseOneAnswers AnswerSet) ([]string, error) {
	if !quiz.HasPhaseTwo() {
		return nil, nil
	}
	if err := requirePhaseOneComplete(quiz, phaseOneAnswers); err != nil {
		return nil, err
	}

	provisional, err := scoreAnswered(quiz, phaseOneAnswers, 1)
	if err != nil {
		return nil, err
	}

	threshold := quiz.RelevanceThreshold
	if threshold == 0 {
		threshold = DefaultRelevanceThreshold
	}

	var selected []string
	for _, category := range quiz.Categories {
		score, ok := provisional[category.ID]
		if ok && score >= threshold {
			selected = append(selected, category.ID)
		}
	}
	if len(selected) > 0 {
		return selected, nil
	}

	// Fallback: the highest provisional score wins, declaration order
	// breaks ties. Only categories that had phase-1 answers compete.
	var (
		best      string
		bestScore float64
		found     bool
	)
	for _, category := range quiz.Categories {
		score, ok := provisional[category.ID]
		if !ok {
			continue
		}
		if !found || score > bestScore {
			best = category.ID
			bestScore = score
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return []string{best}, nil
}
