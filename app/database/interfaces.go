package database

import (
	"context"

	"github.com/lexwire/lexwire/app/articles"
)

type ArticleRepository interface {
	All(ctx context.Context) ([]articles.Article, error)
	BySlug(ctx context.Context, slug string) (*articles.Article, error)

	// UpsertArticles writes a batch in one statement, keyed on slug,
	// overwriting on conflict.
	UpsertArticles(ctx context.Context, batch []articles.Article) error
}

type SubscriberRepository interface {
	GetSubscriberCount(ctx context.Context) (int, error)

	// UpsertSubscribers writes a batch in one statement, keyed on email,
	// skipping rows that conflict.
	UpsertSubscribers(ctx context.Context, batch []Subscriber) error
}
