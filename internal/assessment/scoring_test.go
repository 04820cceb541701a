package assessment

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCategoryQuiz() *Quiz {
	return &Quiz{
		ID:         "zelfscan-aandacht",
		Title:      "Zelfscan Aandacht & Energie",
		Audience:   AudienceTeen,
		ResultType: ResultScoreBased,
		Categories: []Category{
			{ID: "focus", Name: "Aandacht & Focus", Icon: IconFocus},
			{ID: "energie", Name: "Energie & Impulsiviteit", Icon: IconEnergy},
		},
		Questions: []Question{
			{ID: "q1", CategoryID: "focus", Prompt: "Ik ben snel afgeleid.", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q2", CategoryID: "focus", Prompt: "Ik verlies spullen.", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q3", CategoryID: "energie", Prompt: "Ik zit vol energie.", Weight: 1, Phase: 1, Domain: DefaultDomain},
		},
	}
}

func TestComputeScores_WeightedMean(t *testing.T) {
	quiz := &Quiz{
		ID:       "gewogen",
		Audience: AudienceTeen,
		Categories: []Category{
			{ID: "focus", Name: "Aandacht & Focus"},
		},
		Questions: []Question{
			{ID: "q1", CategoryID: "focus", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q2", CategoryID: "focus", Weight: 3, Phase: 1, Domain: DefaultDomain},
		},
	}
	require.NoError(t, quiz.Validate())

	scores, err := ComputeScores(quiz, AnswerSet{"q1": 2, "q2": 4})
	require.NoError(t, err)

	// weighted mean (2*1 + 4*3) / 4 = 3.5, rescaled from 1-4 onto 0-8
	expected := ScaleMin + (3.5-1.0)/3.0*(ScaleMax-ScaleMin)
	require.Equal(t, expected, scores["focus"])
}

func TestComputeScores_UnansweredQuestionsExcluded(t *testing.T) {
	withDeepDive := twoCategoryQuiz()
	withDeepDive.Questions = append(withDeepDive.Questions,
		Question{ID: "q4", CategoryID: "focus", Weight: 2, Phase: 2, Domain: DefaultDomain},
		Question{ID: "q5", CategoryID: "focus", Weight: 1, Phase: 2, Domain: DefaultDomain},
	)
	withoutDeepDive := twoCategoryQuiz()

	answers := AnswerSet{"q1": 3, "q2": 2, "q3": 1}

	got, err := ComputeScores(withDeepDive, answers)
	require.NoError(t, err)
	want, err := ComputeScores(withoutDeepDive, answers)
	require.NoError(t, err)

	// Unanswered phase-2 questions must not drag the category down.
	assert.Equal(t, want["focus"], got["focus"])
	assert.Equal(t, want["energie"], got["energie"])
}

func TestComputeScores_CategoryWithoutAnswersAbsent(t *testing.T) {
	quiz := twoCategoryQuiz()
	// Energie only has a phase-2 question here, which is never answered.
	quiz.Questions[2].Phase = 2

	scores, err := ComputeScores(quiz, AnswerSet{"q1": 2, "q2": 2})
	require.NoError(t, err)

	_, present := scores["energie"]
	assert.False(t, present, "category without answered questions must have no entry, not zero")
	assert.Len(t, scores, 1)
}

func TestComputeScores_MissingPhaseOneAnswers(t *testing.T) {
	quiz := twoCategoryQuiz()

	_, err := ComputeScores(quiz, AnswerSet{"q1": 2})
	var incomplete *IncompleteSessionError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, quiz.ID, incomplete.QuizID)
	assert.Equal(t, []string{"q2", "q3"}, incomplete.Missing)
}

func TestComputeScores_ValueOutsideDomain(t *testing.T) {
	quiz := twoCategoryQuiz()

	_, err := ComputeScores(quiz, AnswerSet{"q1": 5, "q2": 2, "q3": 1})
	var invalid *InvalidAnswerValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "q1", invalid.QuestionID)
	assert.Equal(t, 5, invalid.Value)
	assert.Equal(t, DefaultDomain, invalid.Domain)
}

func TestComputeScores_UnknownQuestion(t *testing.T) {
	quiz := twoCategoryQuiz()

	_, err := ComputeScores(quiz, AnswerSet{"q1": 2, "q2": 2, "q3": 1, "q99": 3})
	var unknown *UnknownQuestionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "q99", unknown.QuestionID)
}

func TestComputeScores_Extremes(t *testing.T) {
	quiz := twoCategoryQuiz()

	scores, err := ComputeScores(quiz, AnswerSet{"q1": 4, "q2": 4, "q3": 1})
	require.NoError(t, err)
	assert.Equal(t, ScaleMax, scores["focus"])
	assert.Equal(t, ScaleMin, scores["energie"])
}

func TestComputeScores_Idempotent(t *testing.T) {
	quiz := twoCategoryQuiz()
	answers := AnswerSet{"q1": 3, "q2": 2, "q3": 4}

	first, err := ComputeScores(quiz, answers)
	require.NoError(t, err)
	second, err := ComputeScores(quiz, answers)
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same quiz and answers produced different vectors: %v vs %v", first, second)
	}
}
