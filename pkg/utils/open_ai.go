package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAnalysisClient implements AnalysisClientInterface on the OpenAI API.
type OpenAIAnalysisClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAnalysisClient(apiKey, model string) *OpenAIAnalysisClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAnalysisClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAnalysisClient) GenerateReportNarrative(ctx context.Context, input NarrativeInput) (string, error) {
	if len(input.Categories) == 0 {
		return "", fmt.Errorf("no scored categories")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.4,
		MaxTokens:   1024,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildNarrativePrompt(input),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	narrative := strings.TrimSpace(resp.Choices[0].Message.Content)
	if narrative == "" {
		return "", fmt.Errorf("empty narrative")
	}
	return narrative, nil
}

func (c *OpenAIAnalysisClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("no embedding returned")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
