// Package store provides MongoDB-backed repositories for items, users and
// feedback. Documents keep the collection field names of the original data
// set; pkg/models stays driver-free so the matching pipeline can be tested
// against in-memory fakes.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lostective/lostective/internal/config"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps a MongoDB database handle and exposes the typed repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Items returns the item repository.
func (s *Store) Items() *ItemStore {
	return &ItemStore{col: s.db.Collection("items")}
}

// Users returns the user repository.
func (s *Store) Users() *UserStore {
	return &UserStore{col: s.db.Collection("users")}
}

// Feedback returns the feedback repository.
func (s *Store) Feedback() *FeedbackStore {
	return &FeedbackStore{col: s.db.Collection("feedback")}
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
