package services

import (
	"fmt"
	"strings"

	"tripweaver/internal/models/request_models"
)

// The fallback catalog is the deterministic, data-free activity table the
// scheduler reaches for when a slot's buckets are exhausted. Destinations
// are matched by substring; anything unmatched gets the generic table.

type fallbackOption struct {
	name        string
	description string
	category    request_models.Category
	cost        float64
}

type fallbackTable map[Slot][]fallbackOption

var fallbackCatalog = map[string]fallbackTable{
	"paris": {
		SlotMorning: {
			{"Café de Flore Breakfast", "Coffee and croissants at the Saint-Germain institution", request_models.CategoryDining, 15},
			{"Louvre Highlights Visit", "An early walk through the Denon wing before the crowds", request_models.CategoryCulture, 22},
			{"Montmartre Stroll", "Climb from Abbesses to Sacré-Cœur through artists' lanes", request_models.CategoryCulture, 0},
		},
		SlotAfternoon: {
			{"Musée d'Orsay Visit", "Impressionists in the grand railway hall", request_models.CategoryCulture, 16},
			{"Latin Quarter Walk", "Bookshops and medieval streets around the Sorbonne", request_models.CategoryAttraction, 0},
			{"Tuileries Garden Pause", "Chairs by the fountains between the Louvre and Concorde", request_models.CategoryNature, 0},
		},
		SlotEvening: {
			{"Seine River Cruise", "The bridges and façades of Paris lit up from the water", request_models.CategoryAttraction, 18},
			{"Le Marais Dinner", "A classic bistro dinner in the old quarter", request_models.CategoryDining, 45},
			{"Eiffel Tower at Night", "The hourly sparkle seen from the Champ de Mars", request_models.CategoryAttraction, 0},
		},
	},
	"tokyo": {
		SlotMorning: {
			{"Tsukiji Breakfast Run", "Tamagoyaki and tuna bowls at the outer market", request_models.CategoryDining, 20},
			{"Meiji Jingu Walk", "The forest shrine before the city wakes", request_models.CategoryCulture, 0},
			{"Senso-ji Morning Visit", "Asakusa's temple gate and Nakamise lane", request_models.CategoryCulture, 0},
		},
		SlotAfternoon: {
			{"Harajuku and Omotesando", "Backstreet fashion and architecture browsing", request_models.CategoryShopping, 0},
			{"TeamLab Digital Art", "Immersive light installations in Odaiba", request_models.CategoryAttraction, 25},
			{"Shinjuku Gyoen Stroll", "Gardens beneath the skyscrapers", request_models.CategoryNature, 4},
		},
		SlotEvening: {
			{"Golden Gai Bar Hop", "Tiny bars in Shinjuku's lantern-lit alleys", request_models.CategoryNightlife, 30},
			{"Shibuya Crossing at Dusk", "The scramble from above with a view seat", request_models.CategoryAttraction, 0},
			{"Izakaya Dinner", "Skewers and small plates under the rail tracks", request_models.CategoryDining, 35},
		},
	},
	"rome": {
		SlotMorning: {
			{"Colosseum Early Entry", "The amphitheatre floor before the tour groups", request_models.CategoryCulture, 18},
			{"Campo de' Fiori Market", "Produce stalls on the old execution square", request_models.CategoryShopping, 0},
		},
		SlotAfternoon: {
			{"Pantheon and Piazza Navona", "Ancient dome to baroque fountains on foot", request_models.CategoryCulture, 5},
			{"Villa Borghese Gardens", "Pines and lake above the Spanish Steps", request_models.CategoryNature, 0},
		},
		SlotEvening: {
			{"Trastevere Dinner", "Cacio e pepe across the river", request_models.CategoryDining, 38},
			{"Trevi Fountain by Night", "The fountain lit and (almost) quiet", request_models.CategoryAttraction, 0},
		},
	},
	"new york": {
		SlotMorning: {
			{"Brooklyn Bridge Sunrise Walk", "Manhattan skyline from the wooden promenade", request_models.CategoryAttraction, 0},
			{"Bagel and Lox Breakfast", "A proper New York bagel counter", request_models.CategoryDining, 12},
		},
		SlotAfternoon: {
			{"Metropolitan Museum Visit", "Pick two wings and save the rest", request_models.CategoryCulture, 30},
			{"Central Park Ramble", "Woodland paths in mid-Manhattan", request_models.CategoryNature, 0},
		},
		SlotEvening: {
			{"Broadway Performance", "An evening show in the Theater District", request_models.CategoryNightlife, 120},
			{"High Line at Dusk", "The elevated park as the lights come on", request_models.CategoryAttraction, 0},
		},
	},
	"bali": {
		SlotMorning: {
			{"Tegalalang Rice Terrace Walk", "The tiered paddies in morning light", request_models.CategoryNature, 2},
			{"Ubud Market Browse", "Crafts and sarongs before the heat", request_models.CategoryShopping, 0},
		},
		SlotAfternoon: {
			{"Monkey Forest Visit", "Temple ruins and long-tailed macaques", request_models.CategoryNature, 5},
			{"Balinese Cooking Class", "Basa genep spice paste from scratch", request_models.CategoryDining, 30},
		},
		SlotEvening: {
			{"Uluwatu Kecak Dance", "Fire dance on the temple cliff at sunset", request_models.CategoryCulture, 10},
			{"Seminyak Beach Dinner", "Grilled seafood on the sand", request_models.CategoryDining, 25},
		},
	},
}

var fallbackGeneric = fallbackTable{
	SlotMorning: {
		{"Local Breakfast Spot", "Start where the neighborhood eats", request_models.CategoryDining, 10},
		{"Old Town Morning Walk", "The historic center before it fills up", request_models.CategoryCulture, 0},
		{"City Museum Visit", "The main collection, unhurried", request_models.CategoryCulture, 12},
	},
	SlotAfternoon: {
		{"Central Market Visit", "Stalls, snacks and people-watching", request_models.CategoryShopping, 0},
		{"City Park Stroll", "Green space and a slow hour", request_models.CategoryNature, 0},
		{"Landmark Viewpoint", "The classic photo stop, earned on foot", request_models.CategoryAttraction, 5},
	},
	SlotEvening: {
		{"Sunset Viewpoint", "The best light of the day", request_models.CategoryAttraction, 0},
		{"Traditional Dinner", "A set menu of regional staples", request_models.CategoryDining, 30},
		{"Evening Promenade", "Where the city goes after dark", request_models.CategoryNightlife, 0},
	},
}

func fallbackTableFor(destination string) fallbackTable {
	dest := strings.ToLower(strings.TrimSpace(destination))
	for key, table := range fallbackCatalog {
		if strings.Contains(dest, key) {
			return table
		}
	}
	return fallbackGeneric
}

// drawFallback returns the first option for the slot whose name is unused.
// Long trips exhaust the table; then a numbered variant of a table entry is
// synthesized so the trip-wide no-repeat invariant holds even on
// fallback-only days. It always returns a value.
func drawFallback(destination string, slot Slot, used map[string]bool) fallbackOption {
	options := fallbackTableFor(destination)[slot]
	if len(options) == 0 {
		options = fallbackGeneric[slot]
	}

	for _, opt := range options {
		if !used[normalizeName(opt.name)] {
			return opt
		}
	}

	for round := 2; ; round++ {
		for _, opt := range options {
			variant := opt
			variant.name = fmt.Sprintf("%s (Day %d)", opt.name, round)
			if !used[normalizeName(variant.name)] {
				return variant
			}
		}
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
