package config

import (
	"os"
	"strconv"
	"time"
)

// Enrichment backends. "off" disables the enrichment pass entirely.
const (
	EnrichmentGemini = "gemini"
	EnrichmentOpenAI = "openai"
	EnrichmentOff    = "off"
)

// AggregatorConfig is passed to the recommendation aggregator at
// construction. There are no process-wide mutable flags; each mode is an
// explicit field so tests can exercise them in isolation.
type AggregatorConfig struct {
	EnrichmentBackend string
	EnrichmentTimeout time.Duration
	MaxCandidates     int
}

// BudgetPolicy holds the estimation heuristics. The ratios are planning
// approximations, not reconciled against quoted prices.
type BudgetPolicy struct {
	FoodRatio          float64
	TransportRatio     float64
	AccommodationShare float64
}

// CacheTTLs are tiered by data volatility.
type CacheTTLs struct {
	Flights     time.Duration
	Hotels      time.Duration
	Venues      time.Duration
	Mentions    time.Duration
	Itineraries time.Duration
}

type Config struct {
	Port        string
	PostgresURL string
	RedisAddr   string

	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusBaseURL      string
	PlacesAPIKey        string
	PlacesBaseURL       string
	MentionsBaseURL     string

	GeminiAPIKey string
	OpenAIAPIKey string

	Aggregator AggregatorConfig
	Budget     BudgetPolicy
	TTL        CacheTTLs
}

func NewFromEnv() *Config {
	cfg := &Config{
		Port:        envOr("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),

		AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
		AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
		AmadeusBaseURL:      envOr("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		PlacesAPIKey:        os.Getenv("PLACES_API_KEY"),
		PlacesBaseURL:       envOr("PLACES_BASE_URL", "https://api.geoapify.com"),
		MentionsBaseURL:     envOr("MENTIONS_BASE_URL", "https://www.reddit.com"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),

		Aggregator: AggregatorConfig{
			EnrichmentBackend: envOr("ENRICHMENT_BACKEND", EnrichmentOff),
			EnrichmentTimeout: envDurationOr("ENRICHMENT_TIMEOUT", 12*time.Second),
			MaxCandidates:     envIntOr("MAX_CANDIDATES", 40),
		},
		Budget: BudgetPolicy{
			FoodRatio:          envFloatOr("BUDGET_FOOD_RATIO", 0.4),
			TransportRatio:     envFloatOr("BUDGET_TRANSPORT_RATIO", 0.2),
			AccommodationShare: envFloatOr("BUDGET_ACCOMMODATION_SHARE", 0.4),
		},
		TTL: CacheTTLs{
			Flights:     envDurationOr("TTL_FLIGHTS", 30*time.Minute),
			Hotels:      envDurationOr("TTL_HOTELS", time.Hour),
			Venues:      envDurationOr("TTL_VENUES", 6*time.Hour),
			Mentions:    envDurationOr("TTL_MENTIONS", 6*time.Hour),
			Itineraries: envDurationOr("TTL_ITINERARIES", 24*time.Hour),
		},
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
