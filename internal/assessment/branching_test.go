package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func branchingQuiz() *Quiz {
	return &Quiz{
		ID:       "tweetraps",
		Audience: AudienceTeen,
		Categories: []Category{
			{ID: "focus", Name: "Aandacht & Focus"},
			{ID: "energie", Name: "Energie & Impulsiviteit"},
			{ID: "prikkels", Name: "Prikkelverwerking"},
		},
		Questions: []Question{
			{ID: "q1", CategoryID: "focus", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q2", CategoryID: "energie", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q3", CategoryID: "prikkels", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q4", CategoryID: "focus", Weight: 1, Phase: 2, Domain: DefaultDomain},
			{ID: "q5", CategoryID: "energie", Weight: 1, Phase: 2, Domain: DefaultDomain},
			{ID: "q6", CategoryID: "prikkels", Weight: 1, Phase: 2, Domain: DefaultDomain},
		},
	}
}

func TestSelectPhaseTwo_ThresholdSelection(t *testing.T) {
	quiz := branchingQuiz()

	// Value 2 rescales to 2.667 (>= 2.5), value 1 to 0.
	selected, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 2, "q2": 1, "q3": 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"focus", "prikkels"}, selected)
}

func TestSelectPhaseTwo_FallbackToHighestCategory(t *testing.T) {
	quiz := branchingQuiz()

	// All answers at the domain minimum: nothing reaches the threshold,
	// so exactly one category comes back.
	selected, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 1, "q2": 1, "q3": 1})
	require.NoError(t, err)
	require.Len(t, selected, 1)
	// Three-way tie: declaration order wins.
	assert.Equal(t, []string{"focus"}, selected)
}

func TestSelectPhaseTwo_FallbackPicksMaximum(t *testing.T) {
	quiz := branchingQuiz()
	quiz.RelevanceThreshold = 7.0 // nothing reaches it with these answers

	selected, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 1, "q2": 3, "q3": 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"energie"}, selected)
}

func TestSelectPhaseTwo_DeclarationOrderOutput(t *testing.T) {
	quiz := branchingQuiz()

	selected, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 4, "q2": 4, "q3": 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"focus", "energie", "prikkels"}, selected)
}

func TestSelectPhaseTwo_SinglePhaseQuiz(t *testing.T) {
	quiz := branchingQuiz()
	quiz.Questions = quiz.Questions[:3] // drop the deep-dive questions

	selected, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 4, "q2": 4, "q3": 4})
	require.NoError(t, err)
	assert.Nil(t, selected)
}

func TestSelectPhaseTwo_IncompletePhaseOne(t *testing.T) {
	quiz := branchingQuiz()

	_, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 4})
	var incomplete *IncompleteSessionError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"q2", "q3"}, incomplete.Missing)
}

func TestSelectPhaseTwo_IgnoresPhaseTwoAnswers(t *testing.T) {
	quiz := branchingQuiz()

	// A stray phase-2 answer must not shift the provisional scores.
	with, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 2, "q2": 1, "q3": 1, "q4": 4})
	require.NoError(t, err)
	without, err := SelectPhaseTwo(quiz, AnswerSet{"q1": 2, "q2": 1, "q3": 1})
	require.NoError(t, err)
	assert.Equal(t, without, with)
}
