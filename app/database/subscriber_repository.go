package database

import (
	"context"
	"fmt"
	"strings"
)

var _ SubscriberRepository = (*PGSubscriberRepository)(nil)

// PGSubscriberRepository handles database operations for subscribers.
type PGSubscriberRepository struct {
	db *DB
}

func NewSubscriberRepository(db *DB) *PGSubscriberRepository {
	return &PGSubscriberRepository{db: db}
}

func (r *PGSubscriberRepository) GetSubscriberCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscribers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get subscriber count: %w", err)
	}
	return count, nil
}

// UpsertSubscribers writes the batch in a single multi-row INSERT keyed
// on email. Conflicting rows are skipped, never overwritten: an existing
// subscriber's status and timestamps win over the copied record.
func (r *PGSubscriberRepository) UpsertSubscribers(ctx context.Context, batch []Subscriber) error {
	if len(batch) == 0 {
		return nil
	}

	const cols = 4
	placeholders := make([]string, 0, len(batch))
	args := make([]interface{}, 0, len(batch)*cols)

	for i, s := range batch {
		base := i * cols
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4))
		args = append(args, s.Email, s.SubscribedAt, s.Status, s.MongoID)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscribers (email, subscribed_at, status, mongo_id)
		VALUES `+strings.Join(placeholders, ", ")+`
		ON CONFLICT (email) DO NOTHING
	`, args...)

	if err != nil {
		return fmt.Errorf("failed to upsert subscribers: %w", err)
	}

	return nil
}
