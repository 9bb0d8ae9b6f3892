package api

import (
	"context"

	"github.com/lexwire/lexwire/app/articles"
)

type ResolverInterface interface {
	All(ctx context.Context) ([]articles.Article, error)
	Featured(ctx context.Context, limit int) ([]articles.Article, error)
	ByCategory(ctx context.Context, categorySlug string) ([]articles.Article, error)
	ByCategoryAndSubcategory(ctx context.Context, categorySlug, subcategorySlug string) ([]articles.Article, error)
	Related(ctx context.Context, category, excludeSlug string) ([]articles.Article, error)
	ByTag(ctx context.Context, name string) ([]articles.Article, error)
	BySlug(ctx context.Context, slug string) (*articles.Article, error)
}

var _ ResolverInterface = (*articles.Resolver)(nil)

// Pinger is the round-trip check backing /health/db.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	resolver ResolverInterface
	db       Pinger
}

func NewHandler(resolver ResolverInterface, db Pinger) *Handler {
	return &Handler{
		resolver: resolver,
		db:       db,
	}
}
