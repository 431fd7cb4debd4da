package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
)

// AmadeusClient is the primary backend for both the flight and the hotel
// chains. Token handling follows the client-credentials flow; the token is
// shared and refreshed under a mutex.
type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time

	httpClient *http.Client
}

func NewAmadeusClient(clientID, clientSecret, baseURL string) *AmadeusClient {
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *AmadeusClient) Name() string { return "amadeus" }

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amadeus token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("amadeus token parse: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) doGet(ctx context.Context, path string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("amadeus auth: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (c *AmadeusClient) SearchFlights(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.FlightOption, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, fmt.Errorf("amadeus not configured")
	}
	if criteria.Origin == "" {
		return nil, nil
	}

	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&returnDate=%s&adults=%d&max=6&currencyCode=USD",
		url.QueryEscape(locationCode(criteria.Origin)),
		url.QueryEscape(locationCode(criteria.Destination)),
		criteria.StartDate.Format("2006-01-02"),
		criteria.EndDate.Format("2006-01-02"),
		criteria.TravelerCount,
	)

	body, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("flight search: %w", err)
	}

	var payload struct {
		Data []struct {
			Price struct {
				GrandTotal string `json:"grandTotal"`
			} `json:"price"`
			Itineraries []struct {
				Duration string `json:"duration"`
				Segments []struct {
					Departure struct {
						At string `json:"at"`
					} `json:"departure"`
					Arrival struct {
						At string `json:"at"`
					} `json:"arrival"`
					CarrierCode string `json:"carrierCode"`
				} `json:"segments"`
			} `json:"itineraries"`
			ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("flight offers parse: %w", err)
	}

	flights := make([]response_models.FlightOption, 0, len(payload.Data))
	for _, offer := range payload.Data {
		if len(offer.Itineraries) == 0 {
			continue
		}
		price, err := strconv.ParseFloat(offer.Price.GrandTotal, 64)
		if err != nil || price <= 0 {
			continue
		}

		outbound := offer.Itineraries[0]
		airline := ""
		if len(outbound.Segments) > 0 {
			airline = outbound.Segments[0].CarrierCode
		} else if len(offer.ValidatingAirlineCodes) > 0 {
			airline = offer.ValidatingAirlineCodes[0]
		}

		f := response_models.FlightOption{
			Airline:  airline,
			Price:    price,
			Duration: outbound.Duration,
			Stops:    len(outbound.Segments) - 1,
			Source:   c.Name(),
		}
		if f.Stops < 0 {
			f.Stops = 0
		}
		if len(outbound.Segments) > 0 {
			f.DepartureTime = outbound.Segments[0].Departure.At
			f.ArrivalTime = outbound.Segments[len(outbound.Segments)-1].Arrival.At
		}
		flights = append(flights, f)
	}
	return flights, nil
}

func (c *AmadeusClient) SearchHotels(ctx context.Context, criteria request_models.SearchCriteria) ([]response_models.HotelOption, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, fmt.Errorf("amadeus not configured")
	}

	path := fmt.Sprintf(
		"/v1/reference-data/locations/hotels/by-city?cityCode=%s&radius=20&radiusUnit=KM",
		url.QueryEscape(locationCode(criteria.Destination)),
	)

	body, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("hotel search: %w", err)
	}

	var payload struct {
		Data []struct {
			Name    string `json:"name"`
			Address struct {
				CityName string `json:"cityName"`
			} `json:"address"`
			Rating string `json:"rating"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("hotel list parse: %w", err)
	}

	hotels := make([]response_models.HotelOption, 0, len(payload.Data))
	for _, h := range payload.Data {
		if strings.TrimSpace(h.Name) == "" {
			continue
		}
		rating, _ := strconv.ParseFloat(h.Rating, 64)
		hotels = append(hotels, response_models.HotelOption{
			Name:     h.Name,
			Location: nonEmpty(h.Address.CityName, criteria.Destination),
			Rating:   rating,
			Source:   c.Name(),
		})
		if len(hotels) == 8 {
			break
		}
	}
	return hotels, nil
}

// locationCode reduces a free-text place name to the 3-letter code style the
// API expects. Real city lookup is out of scope; the static tier covers
// destinations this guess misses.
func locationCode(place string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(place))
	if idx := strings.IndexAny(trimmed, ", "); idx > 0 {
		trimmed = trimmed[:idx]
	}
	if len(trimmed) > 3 {
		trimmed = trimmed[:3]
	}
	return trimmed
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
