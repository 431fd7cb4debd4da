package request_models

import (
	"strings"
	"time"
)

const tripDateLayout = "2006-01-02"

type TripRequest struct {
	Destination        string   `json:"destination"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	TravelerCount      int      `json:"travelerCount"`
	TotalBudget        float64  `json:"totalBudget"`
	InterestCategories []string `json:"interestCategories"`
	OriginLocation     string   `json:"originLocation,omitempty"`
	SpecialRequests    string   `json:"specialRequests,omitempty"`
}

func parseTripDate(s string) (time.Time, error) {
	if t, err := time.Parse(tripDateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (r TripRequest) Dates() (time.Time, time.Time, error) {
	start, err := parseTripDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseTripDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Days counts itinerary days: the start day is included, the end day is not
// (a 2-night stay is a 2-day itinerary). Never less than 1 for a valid range.
func (r TripRequest) Days() int {
	start, end, err := r.Dates()
	if err != nil {
		return 1
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// Fingerprint returns the cache-key parameters identifying this request.
// Optional fields are nil when absent so they do not perturb the key.
func (r TripRequest) Fingerprint() map[string]any {
	params := map[string]any{
		"destination": strings.ToLower(strings.TrimSpace(r.Destination)),
		"start":       r.StartDate,
		"end":         r.EndDate,
		"travelers":   r.TravelerCount,
		"budget":      r.TotalBudget,
		"interests":   r.InterestCategories,
	}
	if r.OriginLocation != "" {
		params["origin"] = r.OriginLocation
	} else {
		params["origin"] = nil
	}
	return params
}

func (r TripRequest) Context() TripContext {
	return TripContext{
		Destination:     r.Destination,
		Days:            r.Days(),
		Interests:       r.InterestCategories,
		SpecialRequests: r.SpecialRequests,
	}
}
