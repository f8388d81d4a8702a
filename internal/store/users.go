package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lostective/lostective/pkg/models"
)

// UserStore is the MongoDB repository for registered users.
type UserStore struct {
	col *mongo.Collection
}

type userDoc struct {
	Name     string `bson:"name"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
}

// FindByEmail returns the user for an email address, or ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", email, err)
	}
	return &models.User{Name: doc.Name, Email: doc.Email, Password: doc.Password}, nil
}

// Insert stores a new user. The password is expected to be hashed already.
func (s *UserStore) Insert(ctx context.Context, user *models.User) error {
	_, err := s.col.InsertOne(ctx, userDoc{
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	})
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}
