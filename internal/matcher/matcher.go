package matcher

import (
	"context"

	"github.com/lostective/lostective/pkg/models"
)

// ItemStore defines the repository reads the matchers depend on.
type ItemStore interface {
	// FindByID returns the item for a hex id, or store.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Item, error)
	// FindCandidates returns unclaimed items of the given type, in
	// repository order (typically insertion order).
	FindCandidates(ctx context.Context, itemType models.ItemType) ([]*models.Item, error)
}

// Notifier delivers a match notification to the counterpart's reporter.
// Implementations are best-effort and must never fail the caller.
type Notifier interface {
	NotifyMatch(ctx context.Context, counterpart, newItem *models.Item)
}

// Oracle answers free-text comparison prompts. Satisfied by llm.Provider.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
