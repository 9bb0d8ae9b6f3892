package articles

import (
	"strings"

	"golang.org/x/text/cases"
)

// The category/subcategory/tag taxonomy in the store is free text,
// inconsistently cased and pluralized. These predicates deliberately use
// case-insensitive substring containment rather than exact matching:
// switching to exact matching would shrink existing category pages.

// FormatSlug converts a URL slug into its display form: hyphen-separated
// segments are capitalized and joined with spaces, e.g. "criminal-law"
// becomes "Criminal Law".
func FormatSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

// CategoryVariants returns the formatted category together with its
// singular (trailing "s" stripped) and plural (trailing "s" appended)
// forms. Duplicate variants are dropped.
func CategoryVariants(formatted string) []string {
	singular := formatted
	if strings.HasSuffix(formatted, "s") {
		singular = strings.TrimSuffix(formatted, "s")
	}
	plural := formatted
	if !strings.HasSuffix(formatted, "s") {
		plural = formatted + "s"
	}

	variants := []string{formatted}
	if singular != formatted {
		variants = append(variants, singular)
	}
	if plural != formatted {
		variants = append(variants, plural)
	}
	return variants
}

// fold lowercases via Unicode case folding so containment tests behave
// for non-ASCII category names as well.
func fold(s string) string {
	return cases.Fold().String(s)
}

func foldContains(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

func tagsContain(tags []string, term string) bool {
	for _, tag := range tags {
		if foldContains(tag, term) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether the article belongs to the category
// identified by categorySlug: its category field contains any of the
// formatted/singular/plural variants, or one of its tags does.
func MatchesCategory(a Article, categorySlug string) bool {
	for _, term := range CategoryVariants(FormatSlug(categorySlug)) {
		if foldContains(a.Category, term) || tagsContain(a.Tags, term) {
			return true
		}
	}
	return false
}

// MatchesSubcategory reports whether the article belongs to the
// subcategory identified by subcategorySlug, testing the subcategory
// field and the tags against the formatted slug.
func MatchesSubcategory(a Article, subcategorySlug string) bool {
	term := FormatSlug(subcategorySlug)
	if a.Subcategory != nil && foldContains(*a.Subcategory, term) {
		return true
	}
	return tagsContain(a.Tags, term)
}

// MatchesTag reports whether any of the article's tags contains the
// given tag name.
func MatchesTag(a Article, name string) bool {
	return tagsContain(a.Tags, name)
}

// MatchesTagFallback is the secondary tag test, consulted only when no
// article matched the tag directly: the name is searched in the
// category and subcategory fields instead.
func MatchesTagFallback(a Article, name string) bool {
	if foldContains(a.Category, name) {
		return true
	}
	return a.Subcategory != nil && foldContains(*a.Subcategory, name)
}
