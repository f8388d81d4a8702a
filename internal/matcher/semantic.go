package matcher

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/lostective/lostective/pkg/models"
)

// SemanticMatcher asks an LLM oracle whether two item descriptions refer to
// the same physical item. It is the expensive fallback stage, run only for
// priority items after the lexical stage found nothing.
type SemanticMatcher struct {
	store    ItemStore
	oracle   Oracle
	notifier Notifier
}

// NewSemanticMatcher creates a semantic matcher.
func NewSemanticMatcher(store ItemStore, oracle Oracle, notifier Notifier) *SemanticMatcher {
	return &SemanticMatcher{
		store:    store,
		oracle:   oracle,
		notifier: notifier,
	}
}

// Match iterates unclaimed opposite-type candidates in store order and asks
// the oracle a yes/no same-item question per candidate. The first confirmed
// candidate whose contact has not been notified this run is notified,
// appended, and iteration stops; remaining candidates are not examined.
// A failed oracle call skips that candidate only. The result holds at most
// one item.
func (m *SemanticMatcher) Match(ctx context.Context, newItem *models.Item) []*models.Item {
	candidates, err := m.store.FindCandidates(ctx, newItem.Type.Opposite())
	if err != nil {
		log.Printf("Warning: candidate query for semantic matching failed: %v", err)
		return nil
	}

	contacted := make(map[string]bool)
	var matches []*models.Item

	for _, candidate := range candidates {
		response, err := m.oracle.Complete(ctx, comparePrompt(candidate.Description, newItem.Description))
		if err != nil {
			log.Printf("Warning: oracle comparison failed for item %s: %v", candidate.ID, err)
			continue
		}

		decision := strings.ToLower(strings.TrimSpace(response))
		if decision == "yes" && !contacted[candidate.ContactInfo] {
			m.notifier.NotifyMatch(ctx, candidate, newItem)
			contacted[candidate.ContactInfo] = true
			matches = append(matches, candidate)
			break // first confirmed match wins
		}
	}
	return matches
}

// comparePrompt builds the binary same-item question for the oracle.
func comparePrompt(existing, reported string) string {
	return fmt.Sprintf(`Compare these two items. Are they the same lost/found item?

Item A: %s
Item B: %s

Answer YES or NO.`, existing, reported)
}
