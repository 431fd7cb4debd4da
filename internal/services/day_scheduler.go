package services

import (
	"context"
	"fmt"
	"time"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
)

var slotTimes = map[Slot]string{
	SlotMorning:   response_models.MorningTime,
	SlotAfternoon: response_models.AfternoonTime,
	SlotEvening:   response_models.EveningTime,
}

// BuildDayPlans walks days × slots and fills every slot, drawing the first
// unused candidate by category priority and falling back to the catalog when
// a slot's buckets are exhausted. A slot is never left empty. The used-name
// set spans the whole trip, so no activity repeats within one itinerary.
//
// The second return value reports whether any slot needed the fallback
// catalog. Cancellation is checked at the top of each day's loop; on cancel
// the error is returned and the partial plans are discarded by the caller.
func BuildDayPlans(ctx context.Context, destination string, start time.Time, days int, buckets *SlotBuckets) ([]response_models.DayPlan, bool, error) {
	used := make(map[string]bool)
	usedFallback := false
	plans := make([]response_models.DayPlan, 0, days)

	for day := 0; day < days; day++ {
		if err := ctx.Err(); err != nil {
			return nil, usedFallback, err
		}

		date := start.AddDate(0, 0, day)
		plan := response_models.DayPlan{
			DayNumber: day + 1,
			Date:      date.Format("2006-01-02"),
			Title:     fmt.Sprintf("Day %d in %s", day+1, destination),
		}

		for _, slot := range allSlots {
			activity, fromFallback := fillSlot(destination, slot, buckets, used)
			usedFallback = usedFallback || fromFallback
			switch slot {
			case SlotMorning:
				plan.Morning = activity
			case SlotAfternoon:
				plan.Afternoon = activity
			case SlotEvening:
				plan.Evening = activity
			}
		}

		plans = append(plans, plan)
	}
	return plans, usedFallback, nil
}

func fillSlot(destination string, slot Slot, buckets *SlotBuckets, used map[string]bool) (response_models.Activity, bool) {
	if c, ok := drawCandidate(slot, buckets, used); ok {
		used[normalizeName(c.Name)] = true
		return candidateActivity(slot, c, destination), false
	}

	opt := drawFallback(destination, slot, used)
	used[normalizeName(opt.name)] = true
	return response_models.Activity{
		Time:          slotTimes[slot],
		Name:          opt.name,
		Description:   opt.description,
		EstimatedCost: opt.cost,
		Category:      string(opt.category),
		Location:      destination,
		Source:        "fallback",
	}, true
}

// drawCandidate scans the slot's buckets in category-priority order and
// returns the first candidate not yet scheduled anywhere in the trip.
func drawCandidate(slot Slot, buckets *SlotBuckets, used map[string]bool) (request_models.Candidate, bool) {
	for _, category := range slotCategoryPriority[slot] {
		for _, c := range buckets.buckets[slot][category] {
			if !used[normalizeName(c.Name)] {
				return c, true
			}
		}
	}
	// Anything bucketed under a category outside the priority list.
	for category, list := range buckets.buckets[slot] {
		if inPriorityList(slot, category) {
			continue
		}
		for _, c := range list {
			if !used[normalizeName(c.Name)] {
				return c, true
			}
		}
	}
	return request_models.Candidate{}, false
}

func inPriorityList(slot Slot, category request_models.Category) bool {
	for _, c := range slotCategoryPriority[slot] {
		if c == category {
			return true
		}
	}
	return false
}

func candidateActivity(slot Slot, c request_models.Candidate, destination string) response_models.Activity {
	source := "provider"
	if len(c.SourceTags) > 0 {
		source = c.SourceTags[0]
	}
	return response_models.Activity{
		Time:          slotTimes[slot],
		Name:          c.Name,
		Description:   c.Description,
		EstimatedCost: c.EstimatedCost,
		Category:      string(c.Category),
		Location:      destination,
		Source:        source,
	}
}
