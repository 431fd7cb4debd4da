package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"tripweaver/internal/models/request_models"
)

// OpenAIEnrichmentClient is the alternative enrichment backend. It also
// exposes embeddings for the venue dataset's interest-similarity search.
type OpenAIEnrichmentClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIEnrichmentClient(apiKey, model string) *OpenAIEnrichmentClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIEnrichmentClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIEnrichmentClient) EnhanceCandidates(
	ctx context.Context,
	candidates []request_models.Candidate,
	trip request_models.TripContext,
) ([]request_models.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: `Return a JSON object {"activities":[{"name":"...","description":"..."}]} with one entry per input activity, same order, names unchanged.`,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildEnrichmentPrompt(candidates, trip),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices")
	}

	raw := unwrapActivitiesObject(resp.Choices[0].Message.Content)
	return applyEnrichment(candidates, raw)
}

// GetEmbedding generates an embedding vector for pgvector similarity search.
func (c *OpenAIEnrichmentClient) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embeddings: empty response")
	}
	return resp.Data[0].Embedding, nil
}
