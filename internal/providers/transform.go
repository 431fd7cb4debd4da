package providers

import (
	"log"
	"strings"

	"tripweaver/internal/models/request_models"
)

// CanonicalCandidate is the single transform every venue/mention backend
// funnels its payload through. It validates and coerces rather than trusting
// arbitrary field presence: nameless entries are rejected, unknown categories
// become attraction, negative costs and out-of-range confidences are clamped.
func CanonicalCandidate(name, rawCategory, description string, cost, confidence float64, source string) (request_models.Candidate, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		log.Printf("provider %s: dropping nameless entry", source)
		return request_models.Candidate{}, false
	}

	if cost < 0 {
		cost = 0
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = name
	}

	return request_models.Candidate{
		Name:          name,
		Category:      request_models.NormalizeCategory(rawCategory),
		Description:   description,
		EstimatedCost: cost,
		Confidence:    confidence,
		SourceTags:    []string{source},
	}, true
}
