package services

import (
	"math"
	"testing"

	"tripweaver/internal/config"
	"tripweaver/internal/models/response_models"
)

func testPolicy() config.BudgetPolicy {
	return config.BudgetPolicy{
		FoodRatio:          0.4,
		TransportRatio:     0.2,
		AccommodationShare: 0.4,
	}
}

func planWithCosts(morning, afternoon, evening float64) response_models.DayPlan {
	return response_models.DayPlan{
		Morning:   response_models.Activity{EstimatedCost: morning},
		Afternoon: response_models.Activity{EstimatedCost: afternoon},
		Evening:   response_models.Activity{EstimatedCost: evening},
	}
}

func TestSummarizeComponentsAndTotal(t *testing.T) {
	svc := NewBudgetService(testPolicy())

	days := []response_models.DayPlan{
		planWithCosts(10, 20, 30),
		planWithCosts(5, 15, 20),
	}
	summary := svc.Summarize(days, 2000, nil)

	if summary.Activities != 100 {
		t.Fatalf("activities = %v, want 100", summary.Activities)
	}
	if summary.Food != 40 {
		t.Fatalf("food = %v, want 40", summary.Food)
	}
	if summary.Transportation != 20 {
		t.Fatalf("transportation = %v, want 20", summary.Transportation)
	}
	if summary.Accommodation != 800 {
		t.Fatalf("accommodation = %v, want 800", summary.Accommodation)
	}
	if summary.Flights != 0 {
		t.Fatalf("flights = %v, want 0 with no flight options", summary.Flights)
	}

	wantTotal := summary.Activities + summary.Food + summary.Transportation + summary.Accommodation
	if summary.Total != wantTotal {
		t.Fatalf("total = %v, want sum of components %v", summary.Total, wantTotal)
	}
}

func TestSummarizeIncludesCheapestQuotedFlight(t *testing.T) {
	svc := NewBudgetService(testPolicy())

	flights := []response_models.FlightOption{
		{Airline: "AF", Price: 410},
		{Airline: "BA", Price: 530},
	}
	summary := svc.Summarize([]response_models.DayPlan{planWithCosts(10, 10, 10)}, 1000, flights)

	if summary.Flights != 410 {
		t.Fatalf("flights = %v, want the first (best-ranked) quote 410", summary.Flights)
	}
	wantTotal := summary.Activities + summary.Food + summary.Transportation + summary.Accommodation + 410
	if summary.Total != wantTotal {
		t.Fatalf("total = %v, want %v", summary.Total, wantTotal)
	}
}

func TestSummarizeRoundsFractionalSpend(t *testing.T) {
	svc := NewBudgetService(testPolicy())

	summary := svc.Summarize([]response_models.DayPlan{planWithCosts(10.4, 0, 0)}, 500, nil)

	for name, value := range map[string]float64{
		"activities":     summary.Activities,
		"food":           summary.Food,
		"transportation": summary.Transportation,
		"accommodation":  summary.Accommodation,
	} {
		if value != math.Trunc(value) {
			t.Fatalf("%s = %v, want a whole number", name, value)
		}
	}
}

func TestSummarizeEmptyScheduleStillBudgetsAccommodation(t *testing.T) {
	svc := NewBudgetService(testPolicy())

	summary := svc.Summarize(nil, 1500, nil)

	if summary.Activities != 0 || summary.Food != 0 || summary.Transportation != 0 {
		t.Fatalf("activity-driven components should be zero, got %+v", summary)
	}
	if summary.Accommodation != 600 {
		t.Fatalf("accommodation = %v, want 600", summary.Accommodation)
	}
	if summary.Total != 600 {
		t.Fatalf("total = %v, want 600", summary.Total)
	}
}
