package request_models

import "testing"

func TestDaysStartInclusiveEndExclusive(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2026-05-01", "2026-05-03", 2},
		{"2026-05-01", "2026-05-02", 1},
		{"2026-05-01", "2026-05-08", 7},
		{"2026-05-01", "2026-05-01", 1}, // degenerate range clamps to one day
	}
	for _, tc := range cases {
		r := TripRequest{StartDate: tc.start, EndDate: tc.end}
		if got := r.Days(); got != tc.want {
			t.Fatalf("Days(%s..%s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestDatesAcceptRFC3339(t *testing.T) {
	r := TripRequest{StartDate: "2026-05-01T00:00:00Z", EndDate: "2026-05-03T00:00:00Z"}
	start, end, err := r.Dates()
	if err != nil {
		t.Fatalf("Dates: %v", err)
	}
	if !end.After(start) {
		t.Fatal("parsed range inverted")
	}
}

func TestFingerprintNormalizesDestination(t *testing.T) {
	a := TripRequest{Destination: "  Paris ", StartDate: "2026-05-01", EndDate: "2026-05-03"}
	b := TripRequest{Destination: "paris", StartDate: "2026-05-01", EndDate: "2026-05-03"}

	if a.Fingerprint()["destination"] != b.Fingerprint()["destination"] {
		t.Fatal("destination casing/whitespace must not change the fingerprint")
	}
}

func TestFingerprintOmittedOriginIsStable(t *testing.T) {
	r := TripRequest{Destination: "Paris", StartDate: "2026-05-01", EndDate: "2026-05-03"}

	if origin, ok := r.Fingerprint()["origin"]; !ok || origin != nil {
		t.Fatalf("origin = %v (present %v), want explicit nil when absent", origin, ok)
	}

	r.OriginLocation = "London"
	if r.Fingerprint()["origin"] != "London" {
		t.Fatal("origin missing from fingerprint when provided")
	}
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]Category{
		"Restaurant":    CategoryDining,
		"MUSEUM":        CategoryCulture,
		" park ":        CategoryNature,
		"club":          CategoryNightlife,
		"market":        CategoryShopping,
		"viewpoint":     CategoryAttraction,
		"":              CategoryAttraction,
		"entertainment": CategoryAttraction,
	}
	for raw, want := range cases {
		if got := NormalizeCategory(raw); got != want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", raw, got, want)
		}
	}
}
