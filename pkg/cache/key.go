package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Resource kinds with distinct volatility. Flight quotes go stale fastest,
// finished itineraries are safe to keep for a day.
const (
	KindFlights   = "flights"
	KindHotels    = "hotels"
	KindVenues    = "venues"
	KindMentions  = "mentions"
	KindItinerary = "itinerary"
)

// BuildKey derives a deterministic cache key from a kind and a parameter map.
// Keys are sorted and nil values dropped, so two logically identical requests
// always collide on the same key regardless of how the map was assembled.
func BuildKey(kind string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte(':')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(encodeValue(params[k]))
	}
	return b.String()
}

func encodeValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		sorted := make([]string, len(val))
		copy(sorted, val)
		sort.Strings(sorted)
		return strings.Join(sorted, ",")
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(raw)
	}
}
