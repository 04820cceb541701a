package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full pass through the engine: scoring, interpretation and
// recommendation for a small two-category quiz with answers at both
// domain extremes.
func TestEngine_EndToEnd(t *testing.T) {
	quiz := &Quiz{
		ID:       "zelfscan",
		Audience: AudienceTeen,
		Categories: []Category{
			{ID: "focus", Name: "Focus", Icon: IconFocus},
			{ID: "energie", Name: "Energie", Icon: IconEnergy},
		},
		Questions: []Question{
			{ID: "q1", CategoryID: "focus", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q2", CategoryID: "focus", Weight: 1, Phase: 1, Domain: DefaultDomain},
			{ID: "q3", CategoryID: "energie", Weight: 1, Phase: 1, Domain: DefaultDomain},
		},
	}
	require.NoError(t, quiz.Validate())

	scores, err := ComputeScores(quiz, AnswerSet{"q1": 4, "q2": 4, "q3": 1})
	require.NoError(t, err)
	require.Equal(t, 8.0, scores["focus"])
	require.Equal(t, 0.0, scores["energie"])

	templates := interpretationTemplates()
	focus := Interpret(quiz, templates, "focus", scores["focus"], PerspectiveSelf)
	assert.Equal(t, BandVeryHigh, focus.Band)
	energie := Interpret(quiz, templates, "energie", scores["energie"], PerspectiveSelf)
	assert.Equal(t, BandVeryLow, energie.Band)

	matrix := RecommendationMatrix{
		Entries: map[string]TierLists{
			"focus":   {High: []string{"timer", "planner"}, Low: []string{"leesboek"}},
			"energie": {High: []string{"beweegkaart"}, Low: []string{"muziek", "timer"}},
		},
	}
	catalog := toolCatalog("timer", "planner", "leesboek", "beweegkaart", "muziek")

	result := Recommend(quiz, scores, matrix, catalog)

	// Focus's high list lands in high, energie's low list in low; the
	// shared "timer" id appears once, at its highest tier.
	assert.Equal(t, []string{"timer", "planner"}, toolIDs(result.High))
	assert.Empty(t, result.Medium)
	assert.Equal(t, []string{"muziek"}, toolIDs(result.Low))
}
