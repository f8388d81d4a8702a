package matcher

import (
	"context"
	"errors"
	"log"

	"github.com/lostective/lostective/internal/store"
	"github.com/lostective/lostective/pkg/models"
)

// Pipeline orchestrates the two matching stages for a newly reported item:
// the lexical matcher always runs first; the semantic matcher runs only as a
// fallback for priority items when the lexical stage found nothing.
//
// Run is designed for detached execution: no failure escapes it. Every
// external-call site degrades to "no match" or "skip" and is logged.
type Pipeline struct {
	store    ItemStore
	lexical  *LexicalMatcher
	semantic *SemanticMatcher
}

// NewPipeline creates a matching pipeline from its stages.
func NewPipeline(s ItemStore, lexical *LexicalMatcher, semantic *SemanticMatcher) *Pipeline {
	return &Pipeline{
		store:    s,
		lexical:  lexical,
		semantic: semantic,
	}
}

// Run executes the full pipeline for an item id and returns its result.
// An unknown id terminates early with ActionItemNotFound; no matcher is
// invoked and no notification is attempted.
func (p *Pipeline) Run(ctx context.Context, itemID string) *models.MatchResult {
	log.Printf("Running matching pipeline for item %s", itemID)

	item, err := p.store.FindByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Warning: item lookup failed for %s: %v", itemID, err)
		} else {
			log.Printf("Item %s not found", itemID)
		}
		return &models.MatchResult{Action: models.ActionItemNotFound}
	}

	// Stage 1: TF-IDF. Any hit short-circuits the semantic stage.
	if matches := p.lexical.Match(ctx, item); len(matches) > 0 {
		log.Printf("TF-IDF matched %d item(s), skipping semantic stage", len(matches))
		return &models.MatchResult{Method: models.MethodTFIDF, Matches: matches}
	}

	// Stage 2: semantic fallback, gated behind the priority flag.
	if item.Priority {
		matches := p.semantic.Match(ctx, item)
		return &models.MatchResult{Method: models.MethodGemini, Matches: matches}
	}

	log.Printf("No matches found for item %s", itemID)
	return &models.MatchResult{Method: models.MethodNone, Matches: []*models.Item{}}
}
