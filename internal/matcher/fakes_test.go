package matcher

import (
	"context"
	"fmt"

	"github.com/lostective/lostective/internal/store"
	"github.com/lostective/lostective/pkg/models"
)

// fakeStore is an in-memory ItemStore for tests.
type fakeStore struct {
	byID       map[string]*models.Item
	candidates []*models.Item
	findErr    error

	// queriedTypes records every FindCandidates call.
	queriedTypes []models.ItemType
	lookups      int
}

func (f *fakeStore) FindByID(_ context.Context, id string) (*models.Item, error) {
	f.lookups++
	if item, ok := f.byID[id]; ok {
		return item, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) FindCandidates(_ context.Context, itemType models.ItemType) ([]*models.Item, error) {
	f.queriedTypes = append(f.queriedTypes, itemType)
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*models.Item
	for _, item := range f.candidates {
		if item.Type == itemType && !item.IsClaimed {
			out = append(out, item)
		}
	}
	return out, nil
}

// fakeNotifier records NotifyMatch invocations.
type fakeNotifier struct {
	calls []notifyCall
}

type notifyCall struct {
	counterpartID string
	newItemID     string
}

func (f *fakeNotifier) NotifyMatch(_ context.Context, counterpart, newItem *models.Item) {
	f.calls = append(f.calls, notifyCall{counterpart.ID, newItem.ID})
}

// fakeOracle returns scripted responses in order; a response of "ERR" yields
// an error for that call.
type fakeOracle struct {
	responses []string
	calls     int
}

func (f *fakeOracle) Complete(_ context.Context, _ string) (string, error) {
	if f.calls >= len(f.responses) {
		return "", fmt.Errorf("unexpected oracle call %d", f.calls)
	}
	resp := f.responses[f.calls]
	f.calls++
	if resp == "ERR" {
		return "", fmt.Errorf("oracle unavailable")
	}
	return resp, nil
}

func foundItem(id, name, description, contact string) *models.Item {
	return &models.Item{
		ID:          id,
		Name:        name,
		Description: description,
		Type:        models.TypeFound,
		ContactInfo: contact,
	}
}

func lostItem(id, name, description, contact string) *models.Item {
	return &models.Item{
		ID:          id,
		Name:        name,
		Description: description,
		Type:        models.TypeLost,
		ContactInfo: contact,
	}
}
