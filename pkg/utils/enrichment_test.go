package utils

import (
	"errors"
	"strings"
	"testing"

	"tripweaver/internal/models/request_models"
)

func enrichmentInput() []request_models.Candidate {
	return []request_models.Candidate{
		{Name: "Louvre Museum", Category: request_models.CategoryCulture, Description: "a museum"},
		{Name: "Le Comptoir", Category: request_models.CategoryDining, Description: "a bistro"},
	}
}

func TestApplyEnrichmentReplacesDescriptionsKeepsNames(t *testing.T) {
	raw := `[
		{"name":"The Louvre (renamed)","description":"Home of the Mona Lisa"},
		{"name":"Le Comptoir","description":"Neo-bistro cooking in Odeon"}
	]`

	out, err := applyEnrichment(enrichmentInput(), raw)
	if err != nil {
		t.Fatalf("applyEnrichment: %v", err)
	}
	if out[0].Name != "Louvre Museum" {
		t.Fatalf("name = %q; model renames must be ignored", out[0].Name)
	}
	if out[0].Description != "Home of the Mona Lisa" {
		t.Fatalf("description = %q", out[0].Description)
	}
	if out[1].Description != "Neo-bistro cooking in Odeon" {
		t.Fatalf("description = %q", out[1].Description)
	}
}

func TestApplyEnrichmentLengthMismatchIsAnError(t *testing.T) {
	raw := `[{"name":"Louvre Museum","description":"only one"}]`

	_, err := applyEnrichment(enrichmentInput(), raw)
	if !errors.Is(err, ErrEnrichmentMismatch) {
		t.Fatalf("err = %v, want ErrEnrichmentMismatch", err)
	}
}

func TestApplyEnrichmentBlankDescriptionKeepsOriginal(t *testing.T) {
	raw := `[
		{"name":"Louvre Museum","description":"  "},
		{"name":"Le Comptoir","description":"Neo-bistro cooking in Odeon"}
	]`

	out, err := applyEnrichment(enrichmentInput(), raw)
	if err != nil {
		t.Fatalf("applyEnrichment: %v", err)
	}
	if out[0].Description != "a museum" {
		t.Fatalf("description = %q, want the original kept", out[0].Description)
	}
}

func TestApplyEnrichmentGarbageIsAnError(t *testing.T) {
	if _, err := applyEnrichment(enrichmentInput(), "Sure! Here are your activities:"); err == nil {
		t.Fatal("expected parse error on prose output")
	}
}

func TestUnwrapActivitiesObject(t *testing.T) {
	bare := `[{"name":"A","description":"B"}]`
	if got := unwrapActivitiesObject(bare); got != bare {
		t.Fatalf("bare array changed: %q", got)
	}
	wrapped := `{"activities":[{"name":"A","description":"B"}]}`
	if got := unwrapActivitiesObject(wrapped); got != bare {
		t.Fatalf("unwrapped = %q, want the inner array", got)
	}
	if got := unwrapActivitiesObject(" \n" + bare + " "); strings.TrimSpace(got) != bare {
		t.Fatalf("whitespace handling broken: %q", got)
	}
}

func TestBuildEnrichmentPromptListsEveryCandidate(t *testing.T) {
	prompt := buildEnrichmentPrompt(enrichmentInput(), request_models.TripContext{
		Destination:     "Paris",
		Days:            3,
		Interests:       []string{"culture", "dining"},
		SpecialRequests: "wheelchair accessible",
	})

	for _, want := range []string{"Louvre Museum", "Le Comptoir", "3-day trip to Paris", "wheelchair accessible"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
