package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripweaver/internal/models/request_models"
)

// GeminiEnrichmentClient implements EnrichmentClientInterface using Google's
// Gemini models.
type GeminiEnrichmentClient struct {
	client *genai.Client
	model  string
}

func NewGeminiEnrichmentClient(apiKey, model string) (EnrichmentClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEnrichmentClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiEnrichmentClient) EnhanceCandidates(
	ctx context.Context,
	candidates []request_models.Candidate,
	trip request_models.TripContext,
) ([]request_models.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.3)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(4000)

	prompt := buildEnrichmentPrompt(candidates, trip)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("gemini: not valid json")
	}

	return applyEnrichment(candidates, content)
}
