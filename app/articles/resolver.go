package articles

import (
	"context"
	"errors"
	"sort"
)

// ErrNotFound signals that a slug lookup matched no article. It is
// distinct from a store failure and maps to a 404 at the HTTP layer.
var ErrNotFound = errors.New("article not found")

// DefaultFeaturedLimit is used when the caller supplies no usable limit.
const DefaultFeaturedLimit = 5

// RelatedLimit caps the size of a related-articles result.
const RelatedLimit = 3

// Store is the read surface the resolver needs from the article store.
// The store is not required to order results; the resolver sorts.
type Store interface {
	All(ctx context.Context) ([]Article, error)
	BySlug(ctx context.Context, slug string) (*Article, error)
}

// Resolver translates request shapes (category, subcategory, tag, slug)
// into predicates over the article store. It is stateless; one instance
// serves any number of concurrent requests.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// All returns every article, newest first.
func (r *Resolver) All(ctx context.Context) ([]Article, error) {
	return r.sorted(ctx)
}

// Featured returns the most recent limit articles. Despite the name
// there is no is_featured filter: the deployed behavior is most-recent-N
// and callers depend on it.
func (r *Resolver) Featured(ctx context.Context, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	all, err := r.sorted(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// ByCategory returns articles matching the category slug via the
// tolerant taxonomy test. A single pass over the store output keeps the
// result free of duplicates even when an article matches on both its
// category field and its tags.
func (r *Resolver) ByCategory(ctx context.Context, categorySlug string) ([]Article, error) {
	return r.filter(ctx, func(a Article) bool {
		return MatchesCategory(a, categorySlug)
	})
}

// ByCategoryAndSubcategory narrows ByCategory with a subcategory test.
func (r *Resolver) ByCategoryAndSubcategory(ctx context.Context, categorySlug, subcategorySlug string) ([]Article, error) {
	return r.filter(ctx, func(a Article) bool {
		return MatchesCategory(a, categorySlug) && MatchesSubcategory(a, subcategorySlug)
	})
}

// Related returns up to RelatedLimit articles whose category contains
// the given text, excluding the article identified by excludeSlug.
func (r *Resolver) Related(ctx context.Context, category, excludeSlug string) ([]Article, error) {
	matched, err := r.filter(ctx, func(a Article) bool {
		return a.Slug != excludeSlug && foldContains(a.Category, category)
	})
	if err != nil {
		return nil, err
	}
	if len(matched) > RelatedLimit {
		matched = matched[:RelatedLimit]
	}
	return matched, nil
}

// ByTag returns articles whose tags match the given name. Only when the
// primary tag match comes back empty does it fall back to searching the
// category and subcategory fields; the two result sets are never merged.
func (r *Resolver) ByTag(ctx context.Context, name string) ([]Article, error) {
	all, err := r.sorted(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Article, 0)
	for _, a := range all {
		if MatchesTag(a, name) {
			matched = append(matched, a)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}

	for _, a := range all {
		if MatchesTagFallback(a, name) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// BySlug returns the single article with the given slug, or ErrNotFound.
func (r *Resolver) BySlug(ctx context.Context, slug string) (*Article, error) {
	a, err := r.store.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (r *Resolver) sorted(ctx context.Context) ([]Article, error) {
	all, err := r.store.All(ctx)
	if err != nil {
		return nil, err
	}

	// Tie order for equal timestamps is unspecified.
	sort.Slice(all, func(i, j int) bool {
		return all[i].PublishedDate.After(all[j].PublishedDate)
	})
	return all, nil
}

func (r *Resolver) filter(ctx context.Context, keep func(Article) bool) ([]Article, error) {
	all, err := r.sorted(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Article, 0)
	for _, a := range all {
		if keep(a) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
