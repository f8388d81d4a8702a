package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lostective/lostective/pkg/models"
)

// ItemStore is the MongoDB repository for reported items.
type ItemStore struct {
	col *mongo.Collection
}

// itemDoc is the wire shape of an item document.
type itemDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"item_name"`
	Description string             `bson:"description"`
	Type        string             `bson:"type"`
	Date        string             `bson:"date"`
	Time        string             `bson:"time"`
	Location    string             `bson:"location"`
	ContactInfo string             `bson:"contact_info"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Priority    bool               `bson:"priority"`
	WantsCall   bool               `bson:"wants_call"`
	IsClaimed   bool               `bson:"is_claimed"`
	Email       string             `bson:"email,omitempty"`
	ClaimedBy   *claimDoc          `bson:"claimed_by,omitempty"`
}

type claimDoc struct {
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	Proof     string `bson:"proof"`
	ClaimedAt string `bson:"claimed_at"`
}

func (d *itemDoc) toModel() *models.Item {
	item := &models.Item{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Description:   d.Description,
		Type:          models.ItemType(d.Type),
		Date:          d.Date,
		Time:          d.Time,
		Location:      d.Location,
		ContactInfo:   d.ContactInfo,
		ImageURL:      d.ImageURL,
		Priority:      d.Priority,
		WantsCall:     d.WantsCall,
		IsClaimed:     d.IsClaimed,
		ReporterEmail: d.Email,
	}
	if d.ClaimedBy != nil {
		item.ClaimedBy = &models.Claim{
			Name:      d.ClaimedBy.Name,
			Email:     d.ClaimedBy.Email,
			Phone:     d.ClaimedBy.Phone,
			Proof:     d.ClaimedBy.Proof,
			ClaimedAt: d.ClaimedBy.ClaimedAt,
		}
	}
	return item
}

func fromModel(item *models.Item) *itemDoc {
	return &itemDoc{
		Name:        item.Name,
		Description: item.Description,
		Type:        string(item.Type),
		Date:        item.Date,
		Time:        item.Time,
		Location:    item.Location,
		ContactInfo: item.ContactInfo,
		ImageURL:    item.ImageURL,
		Priority:    item.Priority,
		WantsCall:   item.WantsCall,
		IsClaimed:   item.IsClaimed,
		Email:       item.ReporterEmail,
	}
}

// FindByID returns the item for a hex id, or ErrNotFound.
func (s *ItemStore) FindByID(ctx context.Context, id string) (*models.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc itemDoc
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item %s: %w", id, err)
	}
	return doc.toModel(), nil
}

// FindCandidates returns unclaimed items of the given type in natural
// (insertion) order.
func (s *ItemStore) FindCandidates(ctx context.Context, itemType models.ItemType) ([]*models.Item, error) {
	cur, err := s.col.Find(ctx, bson.M{"type": string(itemType), "is_claimed": false})
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer cur.Close(ctx)

	var items []*models.Item
	for cur.Next(ctx) {
		var doc itemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		items = append(items, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return items, nil
}

// List returns all items, newest data included, in natural order.
func (s *ItemStore) List(ctx context.Context) ([]*models.Item, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*models.Item
	for cur.Next(ctx) {
		var doc itemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		items = append(items, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// Insert stores a new item and returns its assigned hex id.
func (s *ItemStore) Insert(ctx context.Context, item *models.Item) (string, error) {
	res, err := s.col.InsertOne(ctx, fromModel(item))
	if err != nil {
		return "", fmt.Errorf("failed to insert item: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Claim marks an item claimed and records the claimant. The transition is
// one-way; claimed items are excluded from all further matching.
func (s *ItemStore) Claim(ctx context.Context, id string, claim *models.Claim) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	claimedAt := claim.ClaimedAt
	if claimedAt == "" {
		claimedAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"is_claimed": true,
			"claimed_by": claimDoc{
				Name:      claim.Name,
				Email:     claim.Email,
				Phone:     claim.Phone,
				Proof:     claim.Proof,
				ClaimedAt: claimedAt,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to claim item %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
