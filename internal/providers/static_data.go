package providers

import (
	"context"
	"fmt"
	"strings"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
)

// Static datasets are the terminal tier of every chain. They never fail, so
// a trip request always yields something to schedule against even with every
// live backend down.

const staticSource = "static"

type StaticVenueProvider struct{}

func NewStaticVenueProvider() *StaticVenueProvider { return &StaticVenueProvider{} }

func (p *StaticVenueProvider) Name() string { return staticSource }

type staticVenue struct {
	name        string
	category    string
	description string
	cost        float64
}

var staticVenuesByDestination = map[string][]staticVenue{
	"paris": {
		{"Louvre Museum", "culture", "World's largest art museum, home of the Mona Lisa", 22},
		{"Musée d'Orsay", "culture", "Impressionist masterpieces in a former railway station", 16},
		{"Le Marais Food Walk", "dining", "Falafel, fromageries and pâtisseries in the old Jewish quarter", 35},
		{"Luxembourg Gardens", "nature", "Formal gardens with fountains and shaded promenades", 0},
		{"Seine Evening Cruise", "attraction", "River cruise past Notre-Dame and the Eiffel Tower at dusk", 18},
		{"Bistro Chez Janou", "dining", "Provençal bistro famous for its chocolate mousse", 40},
	},
	"tokyo": {
		{"Senso-ji Temple", "culture", "Tokyo's oldest temple, approached through the Kaminarimon gate", 0},
		{"Tsukiji Outer Market", "dining", "Street-food stalls and knife shops at the old fish market", 25},
		{"Meiji Jingu", "culture", "Forest shrine dedicated to Emperor Meiji", 0},
		{"Shinjuku Gyoen", "nature", "Landscaped gardens blending Japanese, English and French styles", 4},
		{"Golden Gai", "nightlife", "Alley of tiny bars, each seating a handful of guests", 30},
		{"Akihabara Electric Town", "shopping", "Electronics, anime and retro-game arcades", 0},
	},
	"rome": {
		{"Colosseum", "culture", "The Flavian Amphitheatre, icon of imperial Rome", 18},
		{"Trastevere Trattoria Crawl", "dining", "Cacio e pepe and supplì across the river", 38},
		{"Villa Borghese Gardens", "nature", "Heart-shaped park above the Spanish Steps", 0},
		{"Pantheon", "culture", "Best-preserved monument of ancient Rome", 5},
		{"Campo de' Fiori Market", "shopping", "Morning produce market turning into evening bar scene", 0},
	},
	"new york": {
		{"Metropolitan Museum of Art", "culture", "Five thousand years of art on Fifth Avenue", 30},
		{"Central Park Loop", "nature", "Woodlands, lakes and lawns in mid-Manhattan", 0},
		{"Chelsea Market", "dining", "Food hall in the old Nabisco factory", 30},
		{"Broadway Show", "nightlife", "An evening performance in the Theater District", 120},
		{"Brooklyn Bridge Walk", "attraction", "Skyline views from the wooden promenade", 0},
	},
	"bali": {
		{"Tegalalang Rice Terraces", "nature", "Tiered paddies north of Ubud", 2},
		{"Uluwatu Temple", "culture", "Clifftop sea temple with kecak fire dance at sunset", 5},
		{"Warung Babi Guling", "dining", "Balinese roast suckling pig institution", 8},
		{"Seminyak Beach Clubs", "nightlife", "Sunset cocktails on the sand", 25},
	},
}

var staticGenericVenues = []staticVenue{
	{"Old Town Walking Tour", "culture", "Guided walk through the historic center", 15},
	{"Central Market Hall", "dining", "Local produce and street-food stalls", 12},
	{"City Viewpoint", "attraction", "Panoramic lookout over the city", 0},
	{"Riverside Promenade", "nature", "Walking path along the waterfront", 0},
	{"Artisan Quarter", "shopping", "Workshops and independent boutiques", 0},
}

func (p *StaticVenueProvider) SearchVenues(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, error) {
	venues := staticGenericVenues
	dest := strings.ToLower(strings.TrimSpace(criteria.Destination))
	for key, set := range staticVenuesByDestination {
		if strings.Contains(dest, key) {
			venues = set
			break
		}
	}

	candidates := make([]request_models.Candidate, 0, len(venues))
	for _, v := range venues {
		candidate, ok := CanonicalCandidate(v.name, v.category, v.description, v.cost, 0.5, staticSource)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

type StaticHotelProvider struct{}

func NewStaticHotelProvider() *StaticHotelProvider { return &StaticHotelProvider{} }

func (p *StaticHotelProvider) Name() string { return staticSource }

func (p *StaticHotelProvider) SearchHotels(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.HotelOption, error) {
	dest := strings.TrimSpace(criteria.Destination)
	return []response_models.HotelOption{
		{Name: fmt.Sprintf("%s Central Hotel", dest), Location: dest, PricePerNight: 120, Rating: 4.1, Source: staticSource},
		{Name: fmt.Sprintf("%s Boutique Stay", dest), Location: dest, PricePerNight: 95, Rating: 4.3, Source: staticSource},
		{Name: fmt.Sprintf("%s Budget Inn", dest), Location: dest, PricePerNight: 60, Rating: 3.8, Source: staticSource},
	}, nil
}

type StaticFlightProvider struct{}

func NewStaticFlightProvider() *StaticFlightProvider { return &StaticFlightProvider{} }

func (p *StaticFlightProvider) Name() string { return staticSource }

// Static flights are rough placeholders; without an origin there is nothing
// sensible to estimate, so the list stays empty and the budget simply omits
// flights.
func (p *StaticFlightProvider) SearchFlights(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.FlightOption, error) {
	if criteria.Origin == "" {
		return nil, nil
	}
	return []response_models.FlightOption{
		{
			Airline:       "Estimated fare",
			Price:         250 * float64(criteria.TravelerCount),
			DepartureTime: criteria.StartDate.Format("2006-01-02") + "T08:00",
			ArrivalTime:   criteria.StartDate.Format("2006-01-02") + "T14:00",
			Duration:      "PT6H",
			Stops:         1,
			Source:        staticSource,
		},
	}, nil
}
