package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tripweaver/internal/models/request_models"
)

// PlacesClient is the primary venue backend, a Geoapify-style places API.
type PlacesClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewPlacesClient(apiKey, baseURL string) *PlacesClient {
	return &PlacesClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *PlacesClient) Name() string { return "places" }

// Interest categories mapped to the API's category taxonomy.
var placesCategories = map[string]string{
	"dining":     "catering.restaurant,catering.cafe",
	"culture":    "entertainment.museum,tourism.sights",
	"attraction": "tourism.attraction",
	"nature":     "natural,leisure.park",
	"nightlife":  "adult.nightclub,catering.bar",
	"shopping":   "commercial.shopping_mall,commercial.marketplace",
}

func (c *PlacesClient) SearchVenues(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("places api not configured")
	}

	categories := make([]string, 0, len(criteria.Interests))
	for _, interest := range criteria.Interests {
		if mapped, ok := placesCategories[strings.ToLower(interest)]; ok {
			categories = append(categories, mapped)
		}
	}
	if len(categories) == 0 {
		categories = append(categories, "tourism.attraction")
	}

	limit := criteria.MaxResults
	if limit <= 0 {
		limit = 20
	}

	u := url.URL{Path: "/v2/places"}
	q := url.Values{}
	q.Set("categories", strings.Join(categories, ","))
	q.Set("filter", "place:"+url.QueryEscape(criteria.Destination))
	q.Set("text", criteria.Destination)
	q.Set("limit", fmt.Sprintf("%d", limit))
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places bad status: %s", resp.Status)
	}

	var payload struct {
		Features []struct {
			Properties struct {
				Name       string   `json:"name"`
				Categories []string `json:"categories"`
				Address    string   `json:"formatted"`
				Lat        float64  `json:"lat"`
				Lon        float64  `json:"lon"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}

	candidates := make([]request_models.Candidate, 0, len(payload.Features))
	for _, f := range payload.Features {
		rawCategory := ""
		if len(f.Properties.Categories) > 0 {
			rawCategory = f.Properties.Categories[0]
		}
		candidate, ok := CanonicalCandidate(
			f.Properties.Name,
			rawCategory,
			f.Properties.Address,
			0,
			0.7,
			c.Name(),
		)
		if !ok {
			continue
		}
		candidate.Latitude = f.Properties.Lat
		candidate.Longitude = f.Properties.Lon
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}
