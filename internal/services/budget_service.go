package services

import (
	"math"

	"tripweaver/internal/config"
	"tripweaver/internal/models/response_models"
)

type BudgetServiceInterface interface {
	Summarize(days []response_models.DayPlan, totalBudget float64, flights []response_models.FlightOption) response_models.BudgetSummary
}

// BudgetService turns a finished schedule into a spending estimate. The
// food and transport figures are fixed ratios of activity spend and the
// accommodation figure is a share of the requested budget, not of actual
// hotel quotes; this is planning guidance, not a reconciliation.
type BudgetService struct {
	policy config.BudgetPolicy
}

func NewBudgetService(policy config.BudgetPolicy) BudgetServiceInterface {
	return &BudgetService{policy: policy}
}

func (b *BudgetService) Summarize(days []response_models.DayPlan, totalBudget float64, flights []response_models.FlightOption) response_models.BudgetSummary {
	activities := 0.0
	for _, day := range days {
		activities += day.Morning.EstimatedCost
		activities += day.Afternoon.EstimatedCost
		activities += day.Evening.EstimatedCost
	}

	summary := response_models.BudgetSummary{
		Activities:     math.Round(activities),
		Food:           math.Round(activities * b.policy.FoodRatio),
		Transportation: math.Round(activities * b.policy.TransportRatio),
		Accommodation:  math.Round(totalBudget * b.policy.AccommodationShare),
	}

	if len(flights) > 0 {
		summary.Flights = flights[0].Price
	}

	summary.Total = summary.Activities + summary.Food + summary.Transportation +
		summary.Accommodation + summary.Flights
	return summary
}
