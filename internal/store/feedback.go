package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lostective/lostective/pkg/models"
)

// FeedbackStore is the MongoDB repository for visitor feedback.
type FeedbackStore struct {
	col *mongo.Collection
}

type feedbackDoc struct {
	Name    string `bson:"name"`
	Email   string `bson:"email,omitempty"`
	Message string `bson:"message"`
	Date    string `bson:"date"`
}

// Insert stores a feedback message.
func (s *FeedbackStore) Insert(ctx context.Context, fb *models.Feedback) error {
	name := fb.Name
	if name == "" {
		name = "Anonymous"
	}
	date := fb.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := s.col.InsertOne(ctx, feedbackDoc{
		Name:    name,
		Email:   fb.Email,
		Message: fb.Message,
		Date:    date,
	})
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}
