package providers

import (
	"context"
	"errors"
	"testing"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
)

type stubVenueProvider struct {
	name    string
	results []request_models.Candidate
	err     error
	calls   int
}

func (s *stubVenueProvider) Name() string { return s.name }

func (s *stubVenueProvider) SearchVenues(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, error) {
	s.calls++
	return s.results, s.err
}

type stubHotelProvider struct {
	name    string
	results []response_models.HotelOption
	err     error
	calls   int
}

func (s *stubHotelProvider) Name() string { return s.name }

func (s *stubHotelProvider) SearchHotels(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.HotelOption, error) {
	s.calls++
	return s.results, s.err
}

func venueResult(name string) []request_models.Candidate {
	return []request_models.Candidate{{Name: name, Category: request_models.CategoryAttraction}}
}

func TestVenueChainFirstNonEmptyBackendWins(t *testing.T) {
	first := &stubVenueProvider{name: "first", results: venueResult("From First")}
	second := &stubVenueProvider{name: "second", results: venueResult("From Second")}
	static := &stubVenueProvider{name: "static", results: venueResult("From Static")}

	chain := NewVenueChain(static, first, second)
	got, usedFallback := chain.Search(context.Background(), request_models.SearchCriteria{Destination: "Paris"})

	if usedFallback {
		t.Fatal("fallback flag set although the first backend answered")
	}
	if len(got) != 1 || got[0].Name != "From First" {
		t.Fatalf("got %v, want the first backend's result", got)
	}
	if second.calls != 0 || static.calls != 0 {
		t.Fatalf("later tiers consulted unnecessarily: second=%d static=%d", second.calls, static.calls)
	}
}

func TestVenueChainSkipsFailingAndEmptyBackends(t *testing.T) {
	failing := &stubVenueProvider{name: "failing", err: errors.New("upstream 503")}
	empty := &stubVenueProvider{name: "empty"}
	working := &stubVenueProvider{name: "working", results: venueResult("From Working")}
	static := &stubVenueProvider{name: "static", results: venueResult("From Static")}

	chain := NewVenueChain(static, failing, empty, working)
	got, usedFallback := chain.Search(context.Background(), request_models.SearchCriteria{Destination: "Paris"})

	if usedFallback {
		t.Fatal("fallback flag set although a live backend eventually answered")
	}
	if len(got) != 1 || got[0].Name != "From Working" {
		t.Fatalf("got %v, want the working backend's result", got)
	}
	if failing.calls != 1 || empty.calls != 1 {
		t.Fatalf("earlier tiers skipped: failing=%d empty=%d", failing.calls, empty.calls)
	}
}

func TestVenueChainSubstitutesStaticWhenAllBackendsFail(t *testing.T) {
	failing := &stubVenueProvider{name: "failing", err: errors.New("upstream 503")}
	static := &stubVenueProvider{name: "static", results: venueResult("From Static")}

	chain := NewVenueChain(static, failing)
	got, usedFallback := chain.Search(context.Background(), request_models.SearchCriteria{Destination: "Paris"})

	if !usedFallback {
		t.Fatal("expected fallback flag when the static tier is substituted")
	}
	if len(got) != 1 || got[0].Name != "From Static" {
		t.Fatalf("got %v, want the static dataset", got)
	}
}

func TestVenueChainReportsFallbackEvenWhenStaticErrors(t *testing.T) {
	failing := &stubVenueProvider{name: "failing", err: errors.New("upstream 503")}
	static := &stubVenueProvider{name: "static", err: errors.New("dataset offline")}

	chain := NewVenueChain(static, failing)
	got, usedFallback := chain.Search(context.Background(), request_models.SearchCriteria{Destination: "Paris"})

	if !usedFallback {
		t.Fatal("expected fallback flag")
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want an empty list", got)
	}
}

func TestVenueChainStopsOnCancelledContext(t *testing.T) {
	backend := &stubVenueProvider{name: "backend", results: venueResult("From Backend")}
	static := &stubVenueProvider{name: "static", results: venueResult("From Static")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := NewVenueChain(static, backend)
	got, usedFallback := chain.Search(ctx, request_models.SearchCriteria{Destination: "Paris"})

	if backend.calls != 0 {
		t.Fatalf("backend consulted %d times after cancellation", backend.calls)
	}
	if !usedFallback {
		t.Fatal("cancelled search should fall through to the static tier")
	}
	if len(got) != 1 || got[0].Name != "From Static" {
		t.Fatalf("got %v, want the static dataset", got)
	}
}

func TestHotelChainFirstNonEmptyBackendWins(t *testing.T) {
	failing := &stubHotelProvider{name: "failing", err: errors.New("quota exceeded")}
	working := &stubHotelProvider{name: "working", results: []response_models.HotelOption{{Name: "Grand Hotel"}}}
	static := &stubHotelProvider{name: "static", results: []response_models.HotelOption{{Name: "Static Inn"}}}

	chain := NewHotelChain(static, failing, working)
	got, usedFallback := chain.Search(context.Background(), request_models.SearchCriteria{Destination: "Paris"})

	if usedFallback {
		t.Fatal("fallback flag set although a live backend answered")
	}
	if len(got) != 1 || got[0].Name != "Grand Hotel" {
		t.Fatalf("got %v, want the live backend's hotel", got)
	}
}
