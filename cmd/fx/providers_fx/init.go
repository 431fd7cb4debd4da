package providers_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/config"
	"tripweaver/internal/providers"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	provideEmbedder,
	provideVenueChain,
	provideHotelChain,
	provideFlightChain,
	provideMentionProvider,
)

func provideEmbedder(cfg *config.Config) providers.Embedder {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}
	return utils.NewOpenAIEnrichmentClient(cfg.OpenAIAPIKey, "")
}

func provideVenueChain(cfg *config.Config, db *gorm.DB, embedder providers.Embedder) *providers.VenueChain {
	venueRepo := repositories.NewVenueRepository(db)
	return providers.NewVenueChain(
		providers.NewStaticVenueProvider(),
		providers.NewPlacesClient(cfg.PlacesAPIKey, cfg.PlacesBaseURL),
		providers.NewDatasetVenueProvider(venueRepo, embedder),
	)
}

func provideHotelChain(cfg *config.Config, db *gorm.DB) *providers.HotelChain {
	hotelRepo := repositories.NewHotelRepository(db)
	return providers.NewHotelChain(
		providers.NewStaticHotelProvider(),
		providers.NewAmadeusClient(cfg.AmadeusClientID, cfg.AmadeusClientSecret, cfg.AmadeusBaseURL),
		providers.NewDatasetHotelProvider(hotelRepo),
	)
}

func provideFlightChain(cfg *config.Config) *providers.FlightChain {
	return providers.NewFlightChain(
		providers.NewStaticFlightProvider(),
		providers.NewAmadeusClient(cfg.AmadeusClientID, cfg.AmadeusClientSecret, cfg.AmadeusBaseURL),
	)
}

func provideMentionProvider(cfg *config.Config) providers.MentionProvider {
	return providers.NewMentionsClient(cfg.MentionsBaseURL)
}
