package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// NarrativeCategory is one scored category as handed to the analysis
// provider: plain data only, the provider owns the prose.
type NarrativeCategory struct {
	Name  string
	Score float64
	Band  string
	Title string
}

// NarrativeInput is the structured payload for report narrative
// generation. The engine's contract ends at producing this; whatever the
// provider writes is stored verbatim and never interpreted.
type NarrativeInput struct {
	QuizTitle   string
	Audience    string
	Perspective string
	Categories  []NarrativeCategory
}

type AnalysisClientInterface interface {
	GenerateReportNarrative(ctx context.Context, input NarrativeInput) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// buildNarrativePrompt renders the shared Dutch report prompt used by all
// providers.
func buildNarrativePrompt(input NarrativeInput) string {
	var b strings.Builder
	b.WriteString("Je bent een begripvolle jeugdcoach. Schrijf een korte, warme samenvatting (max 250 woorden) van de uitslag van de zelfscan \"")
	b.WriteString(input.QuizTitle)
	b.WriteString("\".\n")
	if input.Perspective == "parent" {
		b.WriteString("Richt je tot de ouder en schrijf over hun kind in de u-vorm.\n")
	} else {
		b.WriteString("Richt je rechtstreeks tot de invuller in de je-vorm.\n")
	}
	b.WriteString("\nScores per onderdeel (schaal 0-8):\n")
	for _, c := range input.Categories {
		fmt.Fprintf(&b, "- %s: %.1f (%s", c.Name, c.Score, c.Band)
		if c.Title != "" {
			fmt.Fprintf(&b, ", %q", c.Title)
		}
		b.WriteString(")\n")
	}
	b.WriteString("\nGeen diagnoses, geen medisch advies. Benoem sterke punten eerst. Alleen lopende tekst, geen opsomming.")
	return b.String()
}

// NewAnalysisClient creates an OpenAI or Gemini backed client based on config.
func NewAnalysisClient(provider, apiKey, model string) (AnalysisClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIAnalysisClient(apiKey, model), nil
	case "gemini":
		return NewGeminiAnalysisClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported analysis provider: %s", provider)
	}
}
