package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripweaver/internal/models/request_models"
)

// EnrichmentClientInterface is the contract of the text-enrichment
// collaborator. The output list MUST have the same length as the input list;
// a mismatch is the only signal trusted to detect a broken call, and the
// aggregator discards the result when it sees one.
type EnrichmentClientInterface interface {
	EnhanceCandidates(ctx context.Context, candidates []request_models.Candidate, trip request_models.TripContext) ([]request_models.Candidate, error)
}

type enrichedEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func buildEnrichmentPrompt(candidates []request_models.Candidate, trip request_models.TripContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Rewrite the description of each activity below for a %d-day trip to %s.
Keep every name exactly as given. Return JSON only: an array of
{"name":"...","description":"..."} objects, one per input activity, in the
same order. No prose, no markdown.

Traveler interests: %s
`, trip.Days, trip.Destination, strings.Join(trip.Interests, ", "))
	if trip.SpecialRequests != "" {
		fmt.Fprintf(&b, "Special requests: %s\n", trip.SpecialRequests)
	}
	b.WriteString("\nActivities:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- Name: %s | Category: %s | Description: %s\n", c.Name, c.Category, c.Description)
	}
	return b.String()
}

// unwrapActivitiesObject accepts either a bare JSON array or the
// {"activities":[...]} wrapper that JSON-object response mode forces, and
// returns the array portion.
func unwrapActivitiesObject(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		return trimmed
	}
	var wrapper struct {
		Activities json.RawMessage `json:"activities"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wrapper); err == nil && len(wrapper.Activities) > 0 {
		return string(wrapper.Activities)
	}
	return trimmed
}

// applyEnrichment maps the model output back onto copies of the input.
// Names are never taken from the model; they are the dedup key downstream.
func applyEnrichment(original []request_models.Candidate, rawJSON string) ([]request_models.Candidate, error) {
	var entries []enrichedEntry
	if err := json.Unmarshal([]byte(rawJSON), &entries); err != nil {
		return nil, fmt.Errorf("enrichment parse: %w", err)
	}
	if len(entries) != len(original) {
		return nil, ErrEnrichmentMismatch
	}

	out := make([]request_models.Candidate, len(original))
	copy(out, original)
	for i, e := range entries {
		if strings.TrimSpace(e.Description) != "" {
			out[i].Description = e.Description
		}
	}
	return out, nil
}
