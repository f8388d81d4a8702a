package matcher

import (
	"context"
	"log"

	"github.com/lostective/lostective/pkg/models"
)

// DefaultThreshold is the minimum cosine similarity for a lexical match.
const DefaultThreshold = 0.75

// LexicalMatcher finds counterpart items by TF-IDF cosine similarity over
// description texts. It is the cheap, deterministic first stage of the
// matching pipeline.
type LexicalMatcher struct {
	store     ItemStore
	notifier  Notifier
	threshold float64
}

// NewLexicalMatcher creates a lexical matcher. A non-positive threshold
// falls back to DefaultThreshold.
func NewLexicalMatcher(store ItemStore, notifier Notifier, threshold float64) *LexicalMatcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &LexicalMatcher{
		store:     store,
		notifier:  notifier,
		threshold: threshold,
	}
}

// Match returns every unclaimed opposite-type item whose description scores
// at or above the threshold against newItem's description, preserving the
// candidate pool's order. Each selected match triggers exactly one
// notification inline. Failures degrade to an empty result; Match never
// returns an error.
func (m *LexicalMatcher) Match(ctx context.Context, newItem *models.Item) []*models.Item {
	candidates, err := m.store.FindCandidates(ctx, newItem.Type.Opposite())
	if err != nil {
		log.Printf("Warning: candidate query for TF-IDF matching failed: %v", err)
		return nil
	}
	if len(candidates) == 0 {
		log.Printf("No opposite-type items for TF-IDF matching")
		return nil
	}

	// The vector space is fitted over the candidate descriptions plus the
	// new item's description, appended last.
	docs := make([]string, 0, len(candidates)+1)
	for _, c := range candidates {
		docs = append(docs, c.Description)
	}
	docs = append(docs, newItem.Description)

	_, vectors, err := fitTFIDF(docs)
	if err != nil {
		log.Printf("Warning: TF-IDF vectorization failed: %v", err)
		return nil
	}

	query := vectors[len(vectors)-1]

	var matches []*models.Item
	for i, candidate := range candidates {
		score := cosineSimilarity(query, vectors[i])
		if score >= m.threshold {
			log.Printf("TF-IDF match: %s (score: %.2f)", candidate.Name, score)
			m.notifier.NotifyMatch(ctx, candidate, newItem)
			matches = append(matches, candidate)
		}
	}
	return matches
}
