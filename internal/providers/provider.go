package providers

import (
	"context"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
)

// Every external source is a uniform search capability. The aggregator
// depends only on these contracts, never on a specific backend's failure
// mode.

type VenueProvider interface {
	Name() string
	SearchVenues(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, error)
}

type MentionProvider interface {
	Name() string
	SearchMentions(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, error)
}

type HotelProvider interface {
	Name() string
	SearchHotels(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.HotelOption, error)
}

type FlightProvider interface {
	Name() string
	SearchFlights(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.FlightOption, error)
}

// Embedder is the slice of the AI client the dataset venue backend needs for
// similarity search.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
}
