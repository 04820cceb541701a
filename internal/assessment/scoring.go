package assessment

// ComputeScores reduces a session's answer set to a normalized score per
// category. For every category with at least one answered question:
//
//	score = rescale((Σ value×weight) / (Σ weight))
//
// over that category's answered questions only. Unanswered questions
// (phase-2 questions that were never shown) are excluded from numerator
// and denominator; they are not zeroes. Categories without any answered
// question get no entry at all.
//
// All phase-1 questions must be answered, otherwise an
// IncompleteSessionError is returned and no partial vector is produced.
func ComputeScores(quiz *Quiz, answers AnswerSet) (ScoreVector, error) {
	if err := requirePhaseOneComplete(quiz, answers); err != nil {
		return nil, err
	}
	return scoreAnswered(quiz, answers, 0)
}

// scoreAnswered is the shared weighted-mean reduction. A nonzero phase
// restricts the computation to that phase's questions; branching uses it
// to compute provisional phase-1 scores.
func scoreAnswered(quiz *Quiz, answers AnswerSet, phase int) (ScoreVector, error) {
	type accumulator struct {
		weighted float64
		weights  float64
		domain   ValueDomain
	}
	acc := make(map[string]*accumulator)

	for questionID, value := range answers {
		question, ok := quiz.QuestionByID(questionID)
		if !ok {
			return nil, &UnknownQuestionError{QuestionID: questionID}
		}
		if !question.Domain.Contains(value) {
			return nil, &InvalidAnswerValueError{
				QuestionID: questionID,
				Value:      value,
				Domain:     question.Domain,
			}
		}
		if phase != 0 && question.Phase != phase {
			continue
		}
		a := acc[question.CategoryID]
		if a == nil {
			a = &accumulator{domain: question.Domain}
			acc[question.CategoryID] = a
		}
		a.weighted += float64(value) * question.Weight
		a.weights += question.Weight
	}

	scores := make(ScoreVector, len(acc))
	for categoryID, a := range acc {
		mean := a.weighted / a.weights
		scores[categoryID] = rescale(mean, a.domain)
	}
	return scores, nil
}

// rescale maps a raw weighted mean from the question domain onto the
// canonical scale.
func rescale(mean float64, domain ValueDomain) float64 {
	span := float64(domain.Max - domain.Min)
	return ScaleMin + (mean-float64(domain.Min))/span*(ScaleMax-ScaleMin)
}

func requirePhaseOneComplete(quiz *Quiz, answers AnswerSet) error {
	var missing []string
	for _, question := range quiz.Questions {
		if question.Phase != 1 {
			continue
		}
		if _, ok := answers[question.ID]; !ok {
			missing = append(missing, question.ID)
		}
	}
	if len(missing) > 0 {
		return &IncompleteSessionError{QuizID: quiz.ID, Missing: missing}
	}
	return nil
}
