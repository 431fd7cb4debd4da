package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tripweaver/internal/config"
	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/providers"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/cache"
	"tripweaver/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.TripRequest) (*response_models.Itinerary, error)
	GetItineraryByID(ctx context.Context, id string) (*response_models.Itinerary, error)
	ListItineraries(ctx context.Context, destination string, page, pageSize int) ([]response_models.Itinerary, error)
}

type ItineraryService struct {
	recommendations RecommendationServiceInterface
	hotels          *providers.HotelChain
	flights         *providers.FlightChain
	budget          BudgetServiceInterface
	store           cache.Store
	ttl             config.CacheTTLs
	itineraryRepo   repositories.IItineraryRepository
}

func NewItineraryService(
	recommendations RecommendationServiceInterface,
	hotels *providers.HotelChain,
	flights *providers.FlightChain,
	budget BudgetServiceInterface,
	store cache.Store,
	ttl config.CacheTTLs,
	itineraryRepo repositories.IItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		recommendations: recommendations,
		hotels:          hotels,
		flights:         flights,
		budget:          budget,
		store:           store,
		ttl:             ttl,
		itineraryRepo:   itineraryRepo,
	}
}

func validateRequest(req request_models.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return utils.ErrMissingDestination
	}
	start, end, err := req.Dates()
	if err != nil || !end.After(start) {
		return utils.ErrInvalidDateRange
	}
	if req.TravelerCount <= 0 {
		return utils.ErrInvalidTravelers
	}
	if req.TotalBudget <= 0 {
		return utils.ErrInvalidBudget
	}
	if len(req.InterestCategories) == 0 {
		return utils.ErrMissingInterests
	}
	return nil
}

// GenerateItinerary runs the whole pipeline: validate, check the request
// fingerprint in the cache, fan out to providers, schedule, estimate the
// budget and assemble. Past validation the caller always gets a well-formed
// itinerary; an unexpected internal failure yields a minimal shell rather
// than an error.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.TripRequest) (itinerary *response_models.Itinerary, err error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	key := cache.BuildKey(cache.KindItinerary, req.Fingerprint())
	if cached := s.cachedItinerary(ctx, key); cached != nil {
		return cached, nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("itinerary assembly panicked, returning degraded shell: %v", r)
			itinerary = s.degradedShell(req)
			err = nil
		}
	}()

	start, end, _ := req.Dates()
	days := req.Days()
	criteria := request_models.SearchCriteria{
		Destination:   req.Destination,
		StartDate:     start,
		EndDate:       end,
		TravelerCount: req.TravelerCount,
		Origin:        req.OriginLocation,
		Interests:     req.InterestCategories,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		wg                 sync.WaitGroup
		candidates         []request_models.Candidate
		candidatesFallback bool
		hotels             []response_models.HotelOption
		flights            []response_models.FlightOption
	)

	// The three branches are independent; each degrades to its own fallback
	// without cancelling the others.
	wg.Add(1)
	go func() {
		defer wg.Done()
		candidates, candidatesFallback = s.recommendations.AggregateCandidates(ctx, criteria, req.Context())
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		hotels = s.searchHotels(ctx, criteria)
	}()

	if req.OriginLocation != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flights = s.searchFlights(ctx, criteria)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buckets := OrganizeSlots(candidates)
	dayPlans, _, err := BuildDayPlans(ctx, req.Destination, start, days, buckets)
	if err != nil {
		return nil, err
	}

	summary := s.budget.Summarize(dayPlans, req.TotalBudget, flights)

	// A few catalog-filled slots don't flip provenance; only losing the
	// data-driven candidate source does.
	generatedBy := response_models.GeneratedByData
	if candidatesFallback || len(candidates) == 0 {
		generatedBy = response_models.GeneratedByFallback
	}

	itinerary = &response_models.Itinerary{
		ID:            uuid.New().String(),
		Destination:   req.Destination,
		Title:         fmt.Sprintf("%d Days in %s", days, req.Destination),
		Overview:      buildOverview(req, days),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TravelerCount: req.TravelerCount,
		Days:          dayPlans,
		BudgetSummary: summary,
		Hotels:        hotels,
		Flights:       flights,
		InsiderTips:   buildInsiderTips(req.Destination, candidates),
		GeneratedBy:   generatedBy,
	}

	s.persist(ctx, key, req, itinerary)
	return itinerary, nil
}

func (s *ItineraryService) cachedItinerary(ctx context.Context, key string) *response_models.Itinerary {
	if s.store == nil {
		return nil
	}
	raw, ok := s.store.Get(ctx, key)
	if !ok {
		return nil
	}
	var cached response_models.Itinerary
	if err := json.Unmarshal(raw, &cached); err != nil {
		log.Printf("cached itinerary unreadable, regenerating: %v", err)
		return nil
	}
	return &cached
}

func (s *ItineraryService) searchHotels(ctx context.Context, criteria request_models.SearchCriteria) []response_models.HotelOption {
	key := cache.BuildKey(cache.KindHotels, criteriaParams(criteria))
	if s.store != nil {
		if raw, ok := s.store.Get(ctx, key); ok {
			var cached []response_models.HotelOption
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached
			}
		}
	}

	hotels, _ := s.hotels.Search(ctx, criteria)

	if s.store != nil && len(hotels) > 0 {
		if raw, err := json.Marshal(hotels); err == nil {
			s.store.Set(ctx, key, raw, s.ttl.Hotels)
		}
	}
	return hotels
}

func (s *ItineraryService) searchFlights(ctx context.Context, criteria request_models.SearchCriteria) []response_models.FlightOption {
	params := criteriaParams(criteria)
	params["origin"] = criteria.Origin
	key := cache.BuildKey(cache.KindFlights, params)
	if s.store != nil {
		if raw, ok := s.store.Get(ctx, key); ok {
			var cached []response_models.FlightOption
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached
			}
		}
	}

	flights, _ := s.flights.Search(ctx, criteria)

	if s.store != nil && len(flights) > 0 {
		if raw, err := json.Marshal(flights); err == nil {
			s.store.Set(ctx, key, raw, s.ttl.Flights)
		}
	}
	return flights
}

func (s *ItineraryService) persist(ctx context.Context, key string, req request_models.TripRequest, itinerary *response_models.Itinerary) {
	document, err := json.Marshal(itinerary)
	if err != nil {
		log.Printf("itinerary marshal failed, skipping persistence: %v", err)
		return
	}

	if s.store != nil {
		s.store.Set(ctx, key, document, s.ttl.Itineraries)
	}

	if s.itineraryRepo == nil {
		return
	}
	start, end, _ := req.Dates()
	record := &db_models.ItineraryRecord{
		Fingerprint:   key,
		Destination:   req.Destination,
		StartDate:     start.Unix(),
		EndDate:       end.Unix(),
		TravelerCount: req.TravelerCount,
		GeneratedBy:   itinerary.GeneratedBy,
		Interests:     req.InterestCategories,
		Document:      document,
	}
	if id, err := uuid.Parse(itinerary.ID); err == nil {
		record.ID = id
	}
	if err := s.itineraryRepo.Save(ctx, record); err != nil {
		log.Printf("itinerary persist failed: %v", err)
	}
}

// degradedShell is the hard "never return nothing" contract: a minimal valid
// itinerary with empty days and the requested budget as the total.
func (s *ItineraryService) degradedShell(req request_models.TripRequest) *response_models.Itinerary {
	return &response_models.Itinerary{
		ID:            uuid.New().String(),
		Destination:   req.Destination,
		Title:         fmt.Sprintf("Trip to %s", req.Destination),
		Overview:      fmt.Sprintf("A trip to %s for %d traveler(s).", req.Destination, req.TravelerCount),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TravelerCount: req.TravelerCount,
		Days:          []response_models.DayPlan{},
		BudgetSummary: response_models.BudgetSummary{Total: req.TotalBudget},
		InsiderTips:   []string{"We hit a snag generating this itinerary; results are limited. Please try again."},
		GeneratedBy:   response_models.GeneratedByFallback,
	}
}

func buildOverview(req request_models.TripRequest, days int) string {
	return fmt.Sprintf("%d days in %s for %d traveler(s), focused on %s.",
		days, req.Destination, req.TravelerCount, strings.Join(req.InterestCategories, ", "))
}

// buildInsiderTips surfaces the community's favorites plus one budget nudge.
func buildInsiderTips(destination string, candidates []request_models.Candidate) []string {
	tips := make([]string, 0, 4)
	for _, c := range candidates {
		for _, tag := range c.SourceTags {
			if tag == "community" {
				tips = append(tips, fmt.Sprintf("Travelers keep mentioning %s, worth a look.", c.Name))
				break
			}
		}
		if len(tips) == 3 {
			break
		}
	}
	tips = append(tips, fmt.Sprintf("Book %s activities a few days ahead in high season.", destination))
	return tips
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, id string) (*response_models.Itinerary, error) {
	if s.itineraryRepo == nil {
		return nil, utils.ErrItineraryNotFound
	}
	record, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return decodeItineraryRecord(record)
}

func (s *ItineraryService) ListItineraries(ctx context.Context, destination string, page, pageSize int) ([]response_models.Itinerary, error) {
	if s.itineraryRepo == nil {
		return []response_models.Itinerary{}, nil
	}
	records, err := s.itineraryRepo.ListByDestination(ctx, destination, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Itinerary, 0, len(records))
	for i := range records {
		itinerary, err := decodeItineraryRecord(&records[i])
		if err != nil {
			continue
		}
		out = append(out, *itinerary)
	}
	return out, nil
}

func decodeItineraryRecord(record *db_models.ItineraryRecord) (*response_models.Itinerary, error) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal(record.Document, &itinerary); err != nil {
		log.Printf("stored itinerary %s unreadable: %v", record.ID, err)
		return nil, utils.ErrDatabaseError
	}
	return &itinerary, nil
}
