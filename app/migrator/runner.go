package migrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexwire/lexwire/app/articles"
	"github.com/lexwire/lexwire/app/database"
)

const (
	// Articles copy in smaller batches than subscribers so a failed
	// batch narrows down to fewer records.
	ArticleBatchSize    = 10
	SubscriberBatchSize = 20

	// Fixed pause between destination writes to stay under rate limits.
	DefaultBatchDelay = 500 * time.Millisecond
)

// SourceReader is the bulk-read capability of the source store.
type SourceReader interface {
	ListAll(ctx context.Context, collection string) ([]map[string]interface{}, error)
	HasCollection(ctx context.Context, name string) (bool, error)
}

// ArticleUpserter is the bulk-write capability of the destination store
// for articles (conflict key slug, overwrite policy).
type ArticleUpserter interface {
	UpsertArticles(ctx context.Context, batch []articles.Article) error
}

// SubscriberUpserter is the bulk-write capability of the destination
// store for subscribers (conflict key email, ignore policy).
type SubscriberUpserter interface {
	UpsertSubscribers(ctx context.Context, batch []database.Subscriber) error
}

var (
	_ ArticleUpserter    = (*database.PGArticleRepository)(nil)
	_ SubscriberUpserter = (*database.PGSubscriberRepository)(nil)
)

// Summary aggregates per-entity outcomes of a run.
type Summary struct {
	Migrated int
	Failed   int
}

// Report is the overall outcome of one migration run.
type Report struct {
	Articles    Summary
	Subscribers Summary
}

// Runner copies every source record into the destination store in fixed
// size batches. A failed batch is counted and logged, never fatal; the
// run continues with the next batch. Batches run strictly sequentially.
type Runner struct {
	source      SourceReader
	articles    ArticleUpserter
	subscribers SubscriberUpserter
	runLog      *slog.Logger

	ArticlesCollection    string
	SubscribersCollection string
	BatchDelay            time.Duration
}

func NewRunner(source SourceReader, articleStore ArticleUpserter,
	subscriberStore SubscriberUpserter, runLog *slog.Logger) *Runner {
	return &Runner{
		source:                source,
		articles:              articleStore,
		subscribers:           subscriberStore,
		runLog:                runLog,
		ArticlesCollection:    "articles",
		SubscribersCollection: "subscribers",
		BatchDelay:            DefaultBatchDelay,
	}
}

// Run copies all articles, then, if the source has a subscriber
// collection, all subscribers. The returned error is non-nil only for
// fatal source-read failures; batch failures are reported in the Report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	docs, err := r.source.ListAll(ctx, r.ArticlesCollection)
	if err != nil {
		r.runLog.Error("Failed to read source articles", "collection", r.ArticlesCollection, "error", err)
		return nil, fmt.Errorf("failed to read source articles: %w", err)
	}

	r.runLog.Info("Starting article migration", "total", len(docs), "batch_size", ArticleBatchSize)
	report.Articles = r.copyArticles(ctx, docs)
	r.runLog.Info("Article migration finished",
		"migrated", report.Articles.Migrated, "failed", report.Articles.Failed)

	ok, err := r.source.HasCollection(ctx, r.SubscribersCollection)
	if err != nil {
		r.runLog.Error("Failed to check subscriber collection", "error", err)
		return report, fmt.Errorf("failed to check subscriber collection: %w", err)
	}
	if !ok {
		r.runLog.Info("No subscriber collection in source, skipping")
		return report, nil
	}

	subDocs, err := r.source.ListAll(ctx, r.SubscribersCollection)
	if err != nil {
		r.runLog.Error("Failed to read source subscribers", "collection", r.SubscribersCollection, "error", err)
		return report, fmt.Errorf("failed to read source subscribers: %w", err)
	}

	r.runLog.Info("Starting subscriber migration", "total", len(subDocs), "batch_size", SubscriberBatchSize)
	report.Subscribers = r.copySubscribers(ctx, subDocs)
	r.runLog.Info("Subscriber migration finished",
		"migrated", report.Subscribers.Migrated, "failed", report.Subscribers.Failed)

	return report, nil
}

func (r *Runner) copyArticles(ctx context.Context, docs []map[string]interface{}) Summary {
	var summary Summary

	for start := 0; start < len(docs); start += ArticleBatchSize {
		end := min(start+ArticleBatchSize, len(docs))
		batchNum := start/ArticleBatchSize + 1

		batch := make([]articles.Article, 0, end-start)
		for _, doc := range docs[start:end] {
			batch = append(batch, NormalizeArticle(doc))
		}

		if err := r.articles.UpsertArticles(ctx, batch); err != nil {
			summary.Failed += len(batch)
			r.runLog.Error("Article batch failed", "batch", batchNum, "size", len(batch), "error", err)
		} else {
			summary.Migrated += len(batch)
			r.runLog.Info("Article batch migrated", "batch", batchNum, "size", len(batch))
		}

		if end < len(docs) {
			time.Sleep(r.BatchDelay)
		}
	}

	return summary
}

func (r *Runner) copySubscribers(ctx context.Context, docs []map[string]interface{}) Summary {
	var summary Summary

	for start := 0; start < len(docs); start += SubscriberBatchSize {
		end := min(start+SubscriberBatchSize, len(docs))
		batchNum := start/SubscriberBatchSize + 1

		batch := make([]database.Subscriber, 0, end-start)
		for _, doc := range docs[start:end] {
			batch = append(batch, NormalizeSubscriber(doc))
		}

		if err := r.subscribers.UpsertSubscribers(ctx, batch); err != nil {
			summary.Failed += len(batch)
			r.runLog.Error("Subscriber batch failed", "batch", batchNum, "size", len(batch), "error", err)
		} else {
			summary.Migrated += len(batch)
			r.runLog.Info("Subscriber batch migrated", "batch", batchNum, "size", len(batch))
		}

		if end < len(docs) {
			time.Sleep(r.BatchDelay)
		}
	}

	return summary
}
