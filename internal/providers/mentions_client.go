package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"tripweaver/internal/models/request_models"
)

// MentionsClient mines community posts for venue names. It searches one
// query per interest category and counts how often each extracted name comes
// up; the mention frequency becomes the candidate's confidence so the
// aggregator can rank community favorites first.
type MentionsClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewMentionsClient(baseURL string) *MentionsClient {
	return &MentionsClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (c *MentionsClient) Name() string { return "community" }

// Title Case runs of 2-4 words, the shape venue names take in post titles.
var venueNamePattern = regexp.MustCompile(`([A-Z][a-zÀ-ÿ'&-]+(?: [A-Z][a-zÀ-ÿ'&-]+){1,3})`)

// Common title-case phrases that are not venues.
var mentionStopList = map[string]bool{
	"Trip Report": true, "Travel Guide": true, "Any Recommendations": true,
	"First Time": true, "Solo Travel": true, "Day Trip": true,
}

func (c *MentionsClient) SearchMentions(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, error) {
	counts := make(map[string]int)
	nameCategory := make(map[string]string)

	for _, interest := range criteria.Interests {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		titles, err := c.searchPosts(ctx, fmt.Sprintf("%s %s recommendations", criteria.Destination, interest))
		if err != nil {
			return nil, err
		}
		for _, title := range titles {
			for _, name := range extractVenueNames(title, criteria.Destination) {
				counts[name]++
				if _, ok := nameCategory[name]; !ok {
					nameCategory[name] = interest
				}
			}
		}
	}

	candidates := make([]request_models.Candidate, 0, len(counts))
	for name, count := range counts {
		confidence := float64(count) / 5.0
		candidate, ok := CanonicalCandidate(
			name,
			nameCategory[name],
			fmt.Sprintf("Mentioned %d times by travelers discussing %s", count, criteria.Destination),
			0,
			confidence,
			c.Name(),
		)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	// Most-mentioned first; ties resolved by name so output is stable.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].Name < candidates[j].Name
	})
	return candidates, nil
}

func (c *MentionsClient) searchPosts(ctx context.Context, query string) ([]string, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", "25")
	q.Set("sort", "relevance")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "tripweaver/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mention search http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mention search bad status: %s", resp.Status)
	}

	var payload struct {
		Data struct {
			Children []struct {
				Data struct {
					Title    string `json:"title"`
					Selftext string `json:"selftext"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mention search decode: %w", err)
	}

	titles := make([]string, 0, len(payload.Data.Children)*2)
	for _, child := range payload.Data.Children {
		titles = append(titles, child.Data.Title)
		if child.Data.Selftext != "" {
			titles = append(titles, child.Data.Selftext)
		}
	}
	return titles, nil
}

func extractVenueNames(text, destination string) []string {
	var names []string
	for _, match := range venueNamePattern.FindAllString(text, -1) {
		if mentionStopList[match] {
			continue
		}
		// The destination's own name shows up constantly; it is not a venue.
		if strings.EqualFold(match, destination) {
			continue
		}
		names = append(names, match)
	}
	return names
}
