package migrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/lexwire/lexwire/app/articles"
	"github.com/lexwire/lexwire/app/database"
)

type fakeSource struct {
	articles       []map[string]interface{}
	subscribers    []map[string]interface{}
	hasSubscribers bool
	listErr        error
}

func (f *fakeSource) ListAll(ctx context.Context, collection string) ([]map[string]interface{}, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	switch collection {
	case "articles":
		return f.articles, nil
	case "subscribers":
		return f.subscribers, nil
	}
	return nil, fmt.Errorf("unknown collection %s", collection)
}

func (f *fakeSource) HasCollection(ctx context.Context, name string) (bool, error) {
	if name == "subscribers" {
		return f.hasSubscribers, nil
	}
	return true, nil
}

type fakeArticleStore struct {
	batches   [][]articles.Article
	failBatch int // 1-based index of the batch to reject, 0 for none
	bySlug    map[string]articles.Article
}

func (f *fakeArticleStore) UpsertArticles(ctx context.Context, batch []articles.Article) error {
	f.batches = append(f.batches, batch)
	if f.failBatch != 0 && len(f.batches) == f.failBatch {
		return errors.New("upsert rejected")
	}
	if f.bySlug == nil {
		f.bySlug = make(map[string]articles.Article)
	}
	for _, a := range batch {
		f.bySlug[a.Slug] = a
	}
	return nil
}

type fakeSubscriberStore struct {
	batches [][]database.Subscriber
	byEmail map[string]database.Subscriber
}

func (f *fakeSubscriberStore) UpsertSubscribers(ctx context.Context, batch []database.Subscriber) error {
	if f.byEmail == nil {
		f.byEmail = make(map[string]database.Subscriber)
	}
	f.batches = append(f.batches, batch)
	for _, s := range batch {
		if _, exists := f.byEmail[s.Email]; !exists {
			f.byEmail[s.Email] = s
		}
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sourceDocs(n int) []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, map[string]interface{}{
			"title": fmt.Sprintf("Article %03d", i),
		})
	}
	return docs
}

func newTestRunner(source SourceReader, arts ArticleUpserter, subs SubscriberUpserter) *Runner {
	r := NewRunner(source, arts, subs, discardLogger())
	r.BatchDelay = 0
	return r
}

func TestRunner_ArticleBatchSize(t *testing.T) {
	source := &fakeSource{articles: sourceDocs(25)}
	arts := &fakeArticleStore{}
	runner := newTestRunner(source, arts, &fakeSubscriberStore{})

	report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(arts.batches) != 3 {
		t.Fatalf("Expected 3 batches for 25 articles, got %d", len(arts.batches))
	}
	if len(arts.batches[0]) != 10 || len(arts.batches[1]) != 10 || len(arts.batches[2]) != 5 {
		t.Errorf("Expected batch sizes 10/10/5, got %d/%d/%d",
			len(arts.batches[0]), len(arts.batches[1]), len(arts.batches[2]))
	}
	if report.Articles.Migrated != 25 || report.Articles.Failed != 0 {
		t.Errorf("Expected 25 migrated, 0 failed, got %+v", report.Articles)
	}
}

func TestRunner_FailedBatchCountedAndRunContinues(t *testing.T) {
	source := &fakeSource{articles: sourceDocs(30)}
	arts := &fakeArticleStore{failBatch: 2}
	runner := newTestRunner(source, arts, &fakeSubscriberStore{})

	report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Expected batch failure to not abort the run, got %v", err)
	}

	if len(arts.batches) != 3 {
		t.Errorf("Expected all 3 batches attempted, got %d", len(arts.batches))
	}
	if report.Articles.Migrated != 20 {
		t.Errorf("Expected 20 migrated (batches 1 and 3), got %d", report.Articles.Migrated)
	}
	if report.Articles.Failed != 10 {
		t.Errorf("Expected failed batch counted at full batch size 10, got %d", report.Articles.Failed)
	}
}

func TestRunner_SubscriberBatchSize(t *testing.T) {
	subDocs := make([]map[string]interface{}, 0, 45)
	for i := 0; i < 45; i++ {
		subDocs = append(subDocs, map[string]interface{}{
			"email": fmt.Sprintf("reader%03d@example.com", i),
		})
	}
	source := &fakeSource{subscribers: subDocs, hasSubscribers: true}
	subs := &fakeSubscriberStore{}
	runner := newTestRunner(source, &fakeArticleStore{}, subs)

	report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(subs.batches) != 3 {
		t.Fatalf("Expected 3 batches for 45 subscribers, got %d", len(subs.batches))
	}
	if len(subs.batches[0]) != 20 || len(subs.batches[1]) != 20 || len(subs.batches[2]) != 5 {
		t.Errorf("Expected batch sizes 20/20/5, got %d/%d/%d",
			len(subs.batches[0]), len(subs.batches[1]), len(subs.batches[2]))
	}
	if report.Subscribers.Migrated != 45 {
		t.Errorf("Expected 45 subscribers migrated, got %d", report.Subscribers.Migrated)
	}
}

func TestRunner_SubscribersSkippedWhenCollectionAbsent(t *testing.T) {
	source := &fakeSource{articles: sourceDocs(3), hasSubscribers: false}
	subs := &fakeSubscriberStore{}
	runner := newTestRunner(source, &fakeArticleStore{}, subs)

	report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(subs.batches) != 0 {
		t.Errorf("Expected no subscriber batches, got %d", len(subs.batches))
	}
	if report.Subscribers.Migrated != 0 || report.Subscribers.Failed != 0 {
		t.Errorf("Expected empty subscriber summary, got %+v", report.Subscribers)
	}
}

func TestRunner_SourceReadFailureIsFatal(t *testing.T) {
	source := &fakeSource{listErr: errors.New("connection reset")}
	runner := newTestRunner(source, &fakeArticleStore{}, &fakeSubscriberStore{})

	if _, err := runner.Run(context.Background()); err == nil {
		t.Error("Expected fatal error when the source read fails")
	}
}

func TestRunner_Idempotence(t *testing.T) {
	source := &fakeSource{
		articles: sourceDocs(12),
		subscribers: []map[string]interface{}{
			{"email": "a@example.com"},
			{"email": "b@example.com"},
		},
		hasSubscribers: true,
	}
	arts := &fakeArticleStore{}
	subs := &fakeSubscriberStore{}

	runner := newTestRunner(source, arts, subs)
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error on first run: %v", err)
	}
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error on second run: %v", err)
	}

	if len(arts.bySlug) != 12 {
		t.Errorf("Expected 12 distinct articles by slug after re-run, got %d", len(arts.bySlug))
	}
	if len(subs.byEmail) != 2 {
		t.Errorf("Expected 2 distinct subscribers by email after re-run, got %d", len(subs.byEmail))
	}
}
