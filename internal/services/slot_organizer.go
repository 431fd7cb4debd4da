package services

import (
	"strings"

	"tripweaver/internal/models/request_models"
)

type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

var allSlots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

// Which categories the scheduler prefers when drawing for a slot, most
// wanted first.
var slotCategoryPriority = map[Slot][]request_models.Category{
	SlotMorning: {
		request_models.CategoryCulture,
		request_models.CategoryAttraction,
		request_models.CategoryNature,
		request_models.CategoryDining,
		request_models.CategoryShopping,
	},
	SlotAfternoon: {
		request_models.CategoryAttraction,
		request_models.CategoryCulture,
		request_models.CategoryNature,
		request_models.CategoryShopping,
		request_models.CategoryDining,
	},
	SlotEvening: {
		request_models.CategoryDining,
		request_models.CategoryNightlife,
		request_models.CategoryCulture,
		request_models.CategoryAttraction,
	},
}

// SlotBuckets hold candidates grouped by slot and category. They are rebuilt
// fresh for every generation run and are read-only to the scheduler, which
// tracks its own position via the used-name set rather than mutating them.
type SlotBuckets struct {
	buckets map[Slot]map[request_models.Category][]request_models.Candidate
}

func newSlotBuckets() *SlotBuckets {
	b := &SlotBuckets{buckets: make(map[Slot]map[request_models.Category][]request_models.Candidate, len(allSlots))}
	for _, slot := range allSlots {
		b.buckets[slot] = make(map[request_models.Category][]request_models.Candidate)
	}
	return b
}

func (b *SlotBuckets) add(slot Slot, c request_models.Candidate) {
	b.buckets[slot][c.Category] = append(b.buckets[slot][c.Category], c)
}

func (b *SlotBuckets) slotSize(slot Slot) int {
	total := 0
	for _, list := range b.buckets[slot] {
		total += len(list)
	}
	return total
}

// Candidates whose name marks them as a morning stop rather than a meal out.
func isMorningDining(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"breakfast", "brunch", "cafe", "café", "coffee", "bakery"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// OrganizeSlots buckets candidates in a single order-preserving pass, no
// backtracking:
//   - dining goes to both afternoon and evening, except breakfast/cafe-named
//     items which go to morning only
//   - nightlife is evening only
//   - culture and attraction alternate between morning and afternoon,
//     whichever bucket is currently smaller; every third culture item is
//     additionally duplicated into evening
//   - everything else defaults to afternoon
func OrganizeSlots(candidates []request_models.Candidate) *SlotBuckets {
	b := newSlotBuckets()
	cultureSeen := 0

	for _, c := range candidates {
		switch c.Category {
		case request_models.CategoryDining:
			if isMorningDining(c.Name) {
				b.add(SlotMorning, c)
				continue
			}
			b.add(SlotAfternoon, c)
			b.add(SlotEvening, c)

		case request_models.CategoryNightlife:
			b.add(SlotEvening, c)

		case request_models.CategoryCulture, request_models.CategoryAttraction:
			if b.slotSize(SlotMorning) <= b.slotSize(SlotAfternoon) {
				b.add(SlotMorning, c)
			} else {
				b.add(SlotAfternoon, c)
			}
			if c.Category == request_models.CategoryCulture {
				cultureSeen++
				if cultureSeen%3 == 0 {
					b.add(SlotEvening, c)
				}
			}

		default:
			b.add(SlotAfternoon, c)
		}
	}
	return b
}
