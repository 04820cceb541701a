package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiAnalysisClient implements AnalysisClientInterface on Google's
// Gemini free-tier models.
type GeminiAnalysisClient struct {
	client *genai.Client
	model  string
}

func NewGeminiAnalysisClient(apiKey, model string) (AnalysisClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAnalysisClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiAnalysisClient) GenerateReportNarrative(ctx context.Context, input NarrativeInput) (string, error) {
	if len(input.Categories) == 0 {
		return "", fmt.Errorf("no scored categories")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(1024)

	resp, err := m.GenerateContent(ctx, genai.Text(buildNarrativePrompt(input)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	narrative := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if narrative == "" {
		return "", fmt.Errorf("empty narrative")
	}
	return narrative, nil
}

// GetEmbedding generates a vector for tool-catalog search.
// Note: this is a hash-based fallback since the Gemini free tier has no
// dedicated embedding endpoint; the OpenAI client produces real embeddings.
func (c *GeminiAnalysisClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return textToVector(text), nil
}

// textToVector builds a deterministic pseudo-embedding by spreading
// hashed word influence over the vector dimensions and normalizing.
func textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}

func (c *GeminiAnalysisClient) Close() error {
	return c.client.Close()
}
