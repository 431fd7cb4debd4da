package providers

import (
	"testing"

	"tripweaver/internal/models/request_models"
)

func TestCanonicalCandidateRejectsNamelessEntries(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		if _, ok := CanonicalCandidate(name, "culture", "desc", 10, 0.5, "test"); ok {
			t.Fatalf("accepted entry with name %q", name)
		}
	}
}

func TestCanonicalCandidateClampsCostAndConfidence(t *testing.T) {
	c, ok := CanonicalCandidate("Louvre", "culture", "museum", -5, 1.7, "test")
	if !ok {
		t.Fatal("rejected a valid entry")
	}
	if c.EstimatedCost != 0 {
		t.Fatalf("cost = %v, want clamped to 0", c.EstimatedCost)
	}
	if c.Confidence != 1 {
		t.Fatalf("confidence = %v, want clamped to 1", c.Confidence)
	}

	c, _ = CanonicalCandidate("Louvre", "culture", "museum", 10, -0.2, "test")
	if c.Confidence != 0 {
		t.Fatalf("confidence = %v, want clamped to 0", c.Confidence)
	}
}

func TestCanonicalCandidateDefaultsDescriptionToName(t *testing.T) {
	c, _ := CanonicalCandidate("Louvre", "culture", "  ", 0, 0.5, "test")
	if c.Description != "Louvre" {
		t.Fatalf("description = %q, want the name", c.Description)
	}
}

func TestCanonicalCandidateNormalizesUnknownCategories(t *testing.T) {
	c, _ := CanonicalCandidate("Mystery Spot", "entertainment.weird", "x", 0, 0.5, "test")
	if c.Category != request_models.CategoryAttraction {
		t.Fatalf("category = %q, want attraction for unknown input", c.Category)
	}
}

func TestCanonicalCandidateTagsTheSource(t *testing.T) {
	c, _ := CanonicalCandidate("Louvre", "culture", "museum", 0, 0.5, "places")
	if len(c.SourceTags) != 1 || c.SourceTags[0] != "places" {
		t.Fatalf("source tags = %v, want [places]", c.SourceTags)
	}
}
