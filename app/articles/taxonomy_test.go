package articles

import (
	"testing"
)

func TestFormatSlug(t *testing.T) {
	cases := map[string]string{
		"criminal-law":    "Criminal Law",
		"family-laws":     "Family Laws",
		"tax":             "Tax",
		"human-rights":    "Human Rights",
		"law-of-the-sea":  "Law Of The Sea",
		"":                "",
	}

	for slug, expected := range cases {
		if got := FormatSlug(slug); got != expected {
			t.Errorf("FormatSlug(%q): expected %q, got %q", slug, expected, got)
		}
	}
}

func TestCategoryVariants(t *testing.T) {
	variants := CategoryVariants("Family Laws")

	if len(variants) != 2 {
		t.Fatalf("Expected 2 variants for 'Family Laws', got %d: %v", len(variants), variants)
	}
	if variants[0] != "Family Laws" {
		t.Errorf("Expected original 'Family Laws' first, got %q", variants[0])
	}
	if variants[1] != "Family Law" {
		t.Errorf("Expected singular 'Family Law', got %q", variants[1])
	}

	variants = CategoryVariants("Criminal Law")
	if len(variants) != 2 {
		t.Fatalf("Expected 2 variants for 'Criminal Law', got %d: %v", len(variants), variants)
	}
	if variants[1] != "Criminal Laws" {
		t.Errorf("Expected plural 'Criminal Laws', got %q", variants[1])
	}
}

func TestMatchesCategory_SingularVariant(t *testing.T) {
	// Store category "family law" must match the slug "family-laws"
	// via the singular variant, case-insensitively.
	a := Article{Category: "family law"}

	if !MatchesCategory(a, "family-laws") {
		t.Error("Expected 'family law' to match slug 'family-laws' via singular variant")
	}
}

func TestMatchesCategory_PluralVariant(t *testing.T) {
	a := Article{Category: "Criminal Laws"}

	if !MatchesCategory(a, "criminal-law") {
		t.Error("Expected 'Criminal Laws' to match slug 'criminal-law' via plural variant")
	}
}

func TestMatchesCategory_Substring(t *testing.T) {
	a := Article{Category: "International Criminal Law"}

	if !MatchesCategory(a, "criminal-law") {
		t.Error("Expected substring containment to match, not exact equality")
	}
}

func TestMatchesCategory_ViaTags(t *testing.T) {
	a := Article{Category: "Opinion", Tags: []string{"Criminal Law", "Courts"}}

	if !MatchesCategory(a, "criminal-law") {
		t.Error("Expected tag entry 'Criminal Law' to satisfy the category test")
	}
}

func TestMatchesCategory_NoMatch(t *testing.T) {
	a := Article{Category: "Tax", Tags: []string{"Finance"}}

	if MatchesCategory(a, "criminal-law") {
		t.Error("Expected no match for unrelated category and tags")
	}
}

func TestMatchesSubcategory(t *testing.T) {
	sub := "Drug Offenses"
	a := Article{Subcategory: &sub}

	if !MatchesSubcategory(a, "drug-offenses") {
		t.Error("Expected subcategory field to match formatted slug")
	}

	b := Article{Subcategory: nil, Tags: []string{"drug offenses roundup"}}
	if !MatchesSubcategory(b, "drug-offenses") {
		t.Error("Expected tag entry to satisfy the subcategory test")
	}

	c := Article{Subcategory: nil}
	if MatchesSubcategory(c, "drug-offenses") {
		t.Error("Expected nil subcategory with no tags to not match")
	}
}

func TestMatchesTag(t *testing.T) {
	a := Article{Tags: []string{"Supreme Court", "Appeals"}}

	if !MatchesTag(a, "supreme court") {
		t.Error("Expected case-insensitive tag match")
	}
	if !MatchesTag(a, "court") {
		t.Error("Expected substring tag match")
	}
	if MatchesTag(a, "legislature") {
		t.Error("Expected no match for absent tag")
	}
}

func TestMatchesTagFallback(t *testing.T) {
	sub := "Appellate Courts"
	a := Article{Category: "Litigation", Subcategory: &sub}

	if !MatchesTagFallback(a, "litigation") {
		t.Error("Expected fallback to match category field")
	}
	if !MatchesTagFallback(a, "appellate") {
		t.Error("Expected fallback to match subcategory field")
	}
	if MatchesTagFallback(a, "tax") {
		t.Error("Expected fallback to not match unrelated text")
	}
}
