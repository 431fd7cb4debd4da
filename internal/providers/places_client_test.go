package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripweaver/internal/models/request_models"
)

func TestPlacesSearchMapsFeaturesToCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("apiKey"); got != "test-key" {
			t.Errorf("apiKey = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[
			{"properties":{"name":"Louvre Museum","categories":["museum"],"formatted":"Rue de Rivoli, Paris","lat":48.86,"lon":2.34}},
			{"properties":{"name":"","categories":["museum"],"formatted":"nameless","lat":0,"lon":0}}
		]}`))
	}))
	defer server.Close()

	client := NewPlacesClient("test-key", server.URL)
	got, err := client.SearchVenues(context.Background(), request_models.SearchCriteria{
		Destination: "Paris",
		Interests:   []string{"culture"},
	})
	if err != nil {
		t.Fatalf("SearchVenues: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1 (nameless feature dropped)", len(got))
	}
	c := got[0]
	if c.Name != "Louvre Museum" {
		t.Fatalf("name = %q", c.Name)
	}
	if c.Category != request_models.CategoryCulture {
		t.Fatalf("category = %q, want culture", c.Category)
	}
	if c.Description != "Rue de Rivoli, Paris" {
		t.Fatalf("description = %q", c.Description)
	}
	if c.Latitude != 48.86 || c.Longitude != 2.34 {
		t.Fatalf("coordinates = %v/%v", c.Latitude, c.Longitude)
	}
	if len(c.SourceTags) != 1 || c.SourceTags[0] != "places" {
		t.Fatalf("tags = %v", c.SourceTags)
	}
}

func TestPlacesSearchWithoutAPIKeyFailsFast(t *testing.T) {
	client := NewPlacesClient("", "http://unused")
	_, err := client.SearchVenues(context.Background(), request_models.SearchCriteria{Destination: "Paris"})
	if err == nil {
		t.Fatal("expected error with no API key configured")
	}
}

func TestPlacesSearchBadStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewPlacesClient("test-key", server.URL)
	_, err := client.SearchVenues(context.Background(), request_models.SearchCriteria{Destination: "Paris"})
	if err == nil {
		t.Fatal("expected error on 401 response")
	}
}
