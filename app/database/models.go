package database

import (
	"time"
)

// Subscriber represents a newsletter subscriber row.
type Subscriber struct {
	ID           string
	Email        string
	SubscribedAt time.Time
	Status       string
	MongoID      *string
}
