package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingDestination  = errors.New("destination is required")
	ErrInvalidDateRange    = errors.New("end date must be after start date")
	ErrInvalidTravelers    = errors.New("traveler count must be greater than zero")
	ErrInvalidBudget       = errors.New("total budget must be greater than zero")
	ErrMissingInterests    = errors.New("at least one interest category is required")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrEnrichmentMismatch  = errors.New("enrichment output length mismatch")
	ErrDatabaseError       = errors.New("database error")
)

// IsValidationError reports whether err belongs to the only error category
// surfaced to callers as a rejection. Everything else degrades inside the
// generation pipeline.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMissingDestination),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidTravelers),
		errors.Is(err, ErrInvalidBudget),
		errors.Is(err, ErrMissingInterests):
		return true
	}
	return false
}
