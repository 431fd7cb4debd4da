package request_models

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryDining     Category = "dining"
	CategoryCulture    Category = "culture"
	CategoryAttraction Category = "attraction"
	CategoryNature     Category = "nature"
	CategoryNightlife  Category = "nightlife"
	CategoryShopping   Category = "shopping"
)

// NormalizeCategory coerces whatever a provider payload calls its category
// into one of the six canonical values. Unknown strings become attraction.
func NormalizeCategory(raw string) Category {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dining", "restaurant", "food", "cafe", "bar":
		return CategoryDining
	case "culture", "museum", "historic", "heritage", "gallery":
		return CategoryCulture
	case "nature", "park", "outdoor", "beach", "garden":
		return CategoryNature
	case "nightlife", "club", "night":
		return CategoryNightlife
	case "shopping", "market", "mall":
		return CategoryShopping
	default:
		return CategoryAttraction
	}
}

// Candidate is a ranked, provider-sourced recommendation that has not been
// scheduled yet. Candidates live for a single generation run and are never
// cached individually.
type Candidate struct {
	Name          string
	Category      Category
	Description   string
	EstimatedCost float64
	Confidence    float64
	SourceTags    []string
	Latitude      float64
	Longitude     float64
}

// SearchCriteria is the uniform input every provider adapter accepts.
type SearchCriteria struct {
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	TravelerCount int
	Origin        string
	Interests     []string
	MaxResults    int
}

// TripContext is the read-only trip summary handed to the enrichment
// collaborator alongside the candidate list.
type TripContext struct {
	Destination     string
	Days            int
	Interests       []string
	SpecialRequests string
}
