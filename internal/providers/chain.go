package providers

import (
	"context"
	"log"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
)

// Each resource type has a fixed priority list of interchangeable backends.
// The first backend to return a non-empty list wins. When every backend
// fails or comes back empty, the static dataset is substituted and the
// result is flagged so provenance can be reported on the itinerary.

type VenueChain struct {
	backends []VenueProvider
	static   VenueProvider
}

func NewVenueChain(static VenueProvider, backends ...VenueProvider) *VenueChain {
	return &VenueChain{backends: backends, static: static}
}

func (c *VenueChain) Search(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, bool) {
	for _, b := range c.backends {
		if ctx.Err() != nil {
			break
		}
		venues, err := b.SearchVenues(ctx, criteria)
		if err != nil {
			log.Printf("venue provider %s failed, trying next: %v", b.Name(), err)
			continue
		}
		if len(venues) > 0 {
			return venues, false
		}
	}
	venues, _ := c.static.SearchVenues(ctx, criteria)
	return venues, true
}

type HotelChain struct {
	backends []HotelProvider
	static   HotelProvider
}

func NewHotelChain(static HotelProvider, backends ...HotelProvider) *HotelChain {
	return &HotelChain{backends: backends, static: static}
}

func (c *HotelChain) Search(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.HotelOption, bool) {
	for _, b := range c.backends {
		if ctx.Err() != nil {
			break
		}
		hotels, err := b.SearchHotels(ctx, criteria)
		if err != nil {
			log.Printf("hotel provider %s failed, trying next: %v", b.Name(), err)
			continue
		}
		if len(hotels) > 0 {
			return hotels, false
		}
	}
	hotels, _ := c.static.SearchHotels(ctx, criteria)
	return hotels, true
}

type FlightChain struct {
	backends []FlightProvider
	static   FlightProvider
}

func NewFlightChain(static FlightProvider, backends ...FlightProvider) *FlightChain {
	return &FlightChain{backends: backends, static: static}
}

func (c *FlightChain) Search(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.FlightOption, bool) {
	for _, b := range c.backends {
		if ctx.Err() != nil {
			break
		}
		flights, err := b.SearchFlights(ctx, criteria)
		if err != nil {
			log.Printf("flight provider %s failed, trying next: %v", b.Name(), err)
			continue
		}
		if len(flights) > 0 {
			return flights, false
		}
	}
	flights, _ := c.static.SearchFlights(ctx, criteria)
	return flights, true
}
