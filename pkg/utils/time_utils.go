package utils

import "time"

const DateLayout = "2006-01-02"

// ParseTripDate accepts the wire format used by trip requests (YYYY-MM-DD)
// and, as a fallback, full RFC 3339 timestamps.
func ParseTripDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
