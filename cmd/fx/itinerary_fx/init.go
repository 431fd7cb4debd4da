package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/config"
	"tripweaver/internal/providers"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
	"tripweaver/pkg/cache"
)

var Module = fx.Provide(provideItineraryRepo, provideBudgetService, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.IItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideBudgetService(cfg *config.Config) services.BudgetServiceInterface {
	return services.NewBudgetService(cfg.Budget)
}

func provideItineraryService(
	cfg *config.Config,
	recommendations services.RecommendationServiceInterface,
	hotels *providers.HotelChain,
	flights *providers.FlightChain,
	budget services.BudgetServiceInterface,
	store cache.Store,
	itineraryRepo repositories.IItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(recommendations, hotels, flights, budget, store, cfg.TTL, itineraryRepo)
}
