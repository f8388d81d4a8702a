package matcher

import (
	"context"
	"fmt"
	"testing"

	"github.com/lostective/lostective/pkg/models"
)

func TestLexicalMatchHighOverlap(t *testing.T) {
	st := &fakeStore{candidates: []*models.Item{
		foundItem("f1", "Backpack", "blue backpack containing a laptop", "finder@example.com"),
		foundItem("f2", "Umbrella", "red umbrella", "other@example.com"),
	}}
	notifier := &fakeNotifier{}
	m := NewLexicalMatcher(st, notifier, 0.75)

	newItem := lostItem("l1", "Backpack", "blue backpack with laptop", "owner@example.com")
	matches := m.Match(context.Background(), newItem)

	if len(matches) != 1 || matches[0].ID != "f1" {
		t.Fatalf("Match() = %v, want exactly f1", matches)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifier.calls))
	}
	if notifier.calls[0].counterpartID != "f1" || notifier.calls[0].newItemID != "l1" {
		t.Errorf("notification = %+v, want (f1, l1)", notifier.calls[0])
	}
}

func TestLexicalMatchExactDuplicate(t *testing.T) {
	st := &fakeStore{candidates: []*models.Item{
		foundItem("f1", "Wallet", "black leather wallet with zipper", "finder@example.com"),
	}}
	notifier := &fakeNotifier{}
	m := NewLexicalMatcher(st, notifier, 0.99)

	newItem := lostItem("l1", "Wallet", "black leather wallet with zipper", "owner@example.com")
	matches := m.Match(context.Background(), newItem)

	if len(matches) != 1 {
		t.Fatalf("exact duplicate not matched at threshold 0.99: %v", matches)
	}
}

func TestLexicalMatchQueriesOppositeType(t *testing.T) {
	tests := []struct {
		newType  models.ItemType
		poolType models.ItemType
	}{
		{models.TypeLost, models.TypeFound},
		{models.TypeFound, models.TypeLost},
	}

	for _, tt := range tests {
		t.Run(string(tt.newType), func(t *testing.T) {
			st := &fakeStore{}
			m := NewLexicalMatcher(st, &fakeNotifier{}, 0.75)

			newItem := &models.Item{ID: "n1", Description: "anything", Type: tt.newType}
			m.Match(context.Background(), newItem)

			if len(st.queriedTypes) != 1 || st.queriedTypes[0] != tt.poolType {
				t.Errorf("queried types = %v, want [%s]", st.queriedTypes, tt.poolType)
			}
		})
	}
}

func TestLexicalMatchNeverReturnsSameTypeOrClaimed(t *testing.T) {
	desc := "blue backpack with laptop"
	st := &fakeStore{candidates: []*models.Item{
		{ID: "same", Description: desc, Type: models.TypeLost},
		{ID: "claimed", Description: desc, Type: models.TypeFound, IsClaimed: true},
		{ID: "ok", Description: desc, Type: models.TypeFound},
	}}
	m := NewLexicalMatcher(st, &fakeNotifier{}, 0.75)

	matches := m.Match(context.Background(), lostItem("l1", "Backpack", desc, "owner@example.com"))

	for _, match := range matches {
		if match.Type == models.TypeLost {
			t.Errorf("matched same-type item %s", match.ID)
		}
		if match.IsClaimed {
			t.Errorf("matched claimed item %s", match.ID)
		}
	}
	if len(matches) != 1 || matches[0].ID != "ok" {
		t.Errorf("Match() = %v, want exactly ok", matches)
	}
}

func TestLexicalMatchEmptyPool(t *testing.T) {
	st := &fakeStore{}
	notifier := &fakeNotifier{}
	m := NewLexicalMatcher(st, notifier, 0.75)

	matches := m.Match(context.Background(), lostItem("l1", "Ring", "silver ring", "owner@example.com"))

	if matches != nil {
		t.Errorf("Match() on empty pool = %v, want nil", matches)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("notifications on empty pool = %d, want 0", len(notifier.calls))
	}
}

func TestLexicalMatchDegenerateCorpus(t *testing.T) {
	// Descriptions with no usable terms cannot be vectorized; the matcher
	// degrades to no matches instead of failing.
	st := &fakeStore{candidates: []*models.Item{
		foundItem("f1", "Unknown", "", "finder@example.com"),
	}}
	notifier := &fakeNotifier{}
	m := NewLexicalMatcher(st, notifier, 0.75)

	matches := m.Match(context.Background(), lostItem("l1", "Unknown", "", "owner@example.com"))

	if matches != nil {
		t.Errorf("Match() on degenerate corpus = %v, want nil", matches)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("notifications = %d, want 0", len(notifier.calls))
	}
}

func TestLexicalMatchStoreError(t *testing.T) {
	st := &fakeStore{findErr: fmt.Errorf("connection reset")}
	m := NewLexicalMatcher(st, &fakeNotifier{}, 0.75)

	matches := m.Match(context.Background(), lostItem("l1", "Ring", "silver ring", "owner@example.com"))

	if matches != nil {
		t.Errorf("Match() on store error = %v, want nil", matches)
	}
}

func TestLexicalMatchPreservesPoolOrder(t *testing.T) {
	desc := "black leather wallet"
	st := &fakeStore{candidates: []*models.Item{
		foundItem("f1", "Wallet", desc, "a@example.com"),
		foundItem("f2", "Wallet", desc, "b@example.com"),
		foundItem("f3", "Wallet", desc, "c@example.com"),
	}}
	notifier := &fakeNotifier{}
	m := NewLexicalMatcher(st, notifier, 0.9)

	matches := m.Match(context.Background(), lostItem("l1", "Wallet", desc, "owner@example.com"))

	if len(matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(matches))
	}
	for i, want := range []string{"f1", "f2", "f3"} {
		if matches[i].ID != want {
			t.Errorf("matches[%d] = %s, want %s", i, matches[i].ID, want)
		}
	}
	if len(notifier.calls) != 3 {
		t.Errorf("notifications = %d, want one per match", len(notifier.calls))
	}
}
