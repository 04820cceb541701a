package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interpretationTemplates() TemplateSet {
	return TemplateSet{
		"focus": CategoryTemplates{
			PerspectiveSelf: BandTexts{
				BandVeryLow:  {Title: "Zeer rustig", Description: "Je aandacht dwaalt zelden af."},
				BandLow:      {Title: "Rustig", Description: "Je kunt je meestal goed concentreren."},
				BandMedium:   {Title: "Gemiddeld", Description: "Soms lukt concentreren minder goed."},
				BandHigh:     {Title: "Onrustig", Description: "Je aandacht dwaalt vaak af.", Tip: "Probeer een vaste werkplek."},
				BandVeryHigh: {Title: "Zeer onrustig", Description: "Concentreren kost je veel moeite.", Tip: "Plan korte taakblokken in."},
			},
			PerspectiveParent: BandTexts{
				BandLow:  {Title: "Rustig", Description: "Uw kind kan zich meestal goed concentreren."},
				BandHigh: {Title: "Onrustig", Description: "De aandacht van uw kind dwaalt vaak af."},
			},
		},
		"energie": CategoryTemplates{
			// Collapsed extremes: only low/medium/high variants exist.
			PerspectiveSelf: BandTexts{
				BandLow:    {Title: "Laag", Description: "Weinig signalen van impulsiviteit."},
				BandMedium: {Title: "Gemiddeld", Description: "Af en toe impulsief."},
				BandHigh:   {Title: "Hoog", Description: "Vaak impulsief en beweeglijk."},
			},
		},
		StandardTemplateID: CategoryTemplates{
			PerspectiveSelf: BandTexts{
				BandLow:    {Title: "Standaard laag", Description: "Weinig opvallends op dit vlak."},
				BandMedium: {Title: "Standaard gemiddeld", Description: "Een gemiddeld beeld."},
				BandHigh:   {Title: "Standaard hoog", Description: "Dit vlak vraagt aandacht."},
			},
		},
	}
}

func TestBandFor_BoundariesAreHalfOpen(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0.0, BandVeryLow},
		{1.4999, BandVeryLow},
		{1.5, BandLow}, // exact boundary lands on the upper side
		{2.5, BandMedium},
		{3.5, BandHigh},
		{4.5, BandVeryHigh},
		{8.0, BandVeryHigh},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, BandFor(tc.score, DefaultBandThresholds), "score %v", tc.score)
	}
}

func TestInterpret_SelfPerspective(t *testing.T) {
	quiz := twoCategoryQuiz()
	templates := interpretationTemplates()

	got := Interpret(quiz, templates, "focus", 5.2, PerspectiveSelf)
	require.Equal(t, BandVeryHigh, got.Band)
	assert.Equal(t, "Zeer onrustig", got.Title)
	assert.Equal(t, "Plan korte taakblokken in.", got.Tip)
}

func TestInterpret_ParentPerspective(t *testing.T) {
	quiz := twoCategoryQuiz()
	templates := interpretationTemplates()

	got := Interpret(quiz, templates, "focus", 4.0, PerspectiveParent)
	require.Equal(t, BandHigh, got.Band)
	assert.Equal(t, "De aandacht van uw kind dwaalt vaak af.", got.Description)
}

func TestInterpret_ParentFallsBackToSelf(t *testing.T) {
	quiz := twoCategoryQuiz()
	templates := interpretationTemplates()

	// energie has no parent phrasing at all.
	got := Interpret(quiz, templates, "energie", 4.0, PerspectiveParent)
	require.Equal(t, BandHigh, got.Band)
	assert.Equal(t, "Vaak impulsief en beweeglijk.", got.Description)
}

func TestInterpret_CollapsedExtremes(t *testing.T) {
	quiz := twoCategoryQuiz()
	templates := interpretationTemplates()

	veryLow := Interpret(quiz, templates, "energie", 0.5, PerspectiveSelf)
	assert.Equal(t, BandVeryLow, veryLow.Band, "band stays very_low even when the text collapses")
	assert.Equal(t, "Laag", veryLow.Title)

	veryHigh := Interpret(quiz, templates, "energie", 7.5, PerspectiveSelf)
	assert.Equal(t, BandVeryHigh, veryHigh.Band)
	assert.Equal(t, "Hoog", veryHigh.Title)
}

func TestInterpret_UnknownCategoryUsesStandaard(t *testing.T) {
	quiz := twoCategoryQuiz()
	templates := interpretationTemplates()

	got := Interpret(quiz, templates, "slaap", 3.0, PerspectiveSelf)
	require.Equal(t, BandMedium, got.Band)
	assert.Equal(t, "Standaard gemiddeld", got.Title)
}

func TestInterpret_CategoryThresholdOverride(t *testing.T) {
	quiz := twoCategoryQuiz()
	quiz.Categories[0].Bands = &BandThresholds{VeryLow: 1.0, Low: 2.0, Medium: 5.0, High: 7.0}
	templates := interpretationTemplates()

	got := Interpret(quiz, templates, "focus", 4.0, PerspectiveSelf)
	assert.Equal(t, BandMedium, got.Band)
}
