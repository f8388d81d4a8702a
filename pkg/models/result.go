package models

// Match methods reported by the pipeline.
const (
	MethodTFIDF  = "tfidf"
	MethodGemini = "gemini"
	MethodNone   = "none"
)

// ActionItemNotFound is reported when the pipeline cannot resolve the item id.
const ActionItemNotFound = "item_not_found"

// MatchResult is the transient outcome of one matching pipeline run.
// It is never persisted; it exists only for logging and for the caller of the
// pipeline (the CLI match command or the background runner).
type MatchResult struct {
	Action  string  `json:"action,omitempty"`
	Method  string  `json:"method,omitempty"`
	Matches []*Item `json:"matches,omitempty"`
}

// Matched reports whether the run produced at least one counterpart.
func (r *MatchResult) Matched() bool {
	return len(r.Matches) > 0
}
