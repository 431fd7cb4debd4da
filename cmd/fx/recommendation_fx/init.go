package recommendation_fx

import (
	"log"

	"go.uber.org/fx"

	"tripweaver/internal/config"
	"tripweaver/internal/providers"
	"tripweaver/internal/services"
	"tripweaver/pkg/cache"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(provideEnricher, provideRecommendationService)

func provideEnricher(cfg *config.Config) utils.EnrichmentClientInterface {
	switch cfg.Aggregator.EnrichmentBackend {
	case config.EnrichmentGemini:
		client, err := utils.NewGeminiEnrichmentClient(cfg.GeminiAPIKey, "")
		if err != nil {
			log.Printf("gemini enrichment unavailable, continuing without: %v", err)
			return nil
		}
		return client
	case config.EnrichmentOpenAI:
		return utils.NewOpenAIEnrichmentClient(cfg.OpenAIAPIKey, "")
	default:
		return nil
	}
}

func provideRecommendationService(
	cfg *config.Config,
	venues *providers.VenueChain,
	mentions providers.MentionProvider,
	enricher utils.EnrichmentClientInterface,
	store cache.Store,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(venues, mentions, enricher, store, cfg.TTL, cfg.Aggregator)
}
