package models

import "strings"

// ItemType distinguishes lost reports from found reports.
type ItemType string

const (
	TypeLost  ItemType = "lost"
	TypeFound ItemType = "found"
)

// Opposite returns the counterpart type (lost <-> found).
func (t ItemType) Opposite() ItemType {
	if t == TypeLost {
		return TypeFound
	}
	return TypeLost
}

// Valid reports whether the type is one of the two known variants.
func (t ItemType) Valid() bool {
	return t == TypeLost || t == TypeFound
}

// ParseItemType normalizes a raw string into an ItemType.
func ParseItemType(s string) ItemType {
	return ItemType(strings.ToLower(strings.TrimSpace(s)))
}

// Item represents a reported lost or found item.
// The ID is assigned by the store; Type never changes after creation and
// IsClaimed transitions false->true exactly once, via the claim workflow.
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Type          ItemType `json:"type"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Location      string   `json:"location"`
	ContactInfo   string   `json:"contact_info"`
	ImageURL      string   `json:"image_url,omitempty"`
	Priority      bool     `json:"priority"`
	WantsCall     bool     `json:"wants_call"`
	IsClaimed     bool     `json:"is_claimed"`
	ReporterEmail string   `json:"reporter_email,omitempty"`
	ClaimedBy     *Claim   `json:"claimed_by,omitempty"`
}

// Claim records who claimed an item and when.
type Claim struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Proof     string `json:"proof"`
	ClaimedAt string `json:"claimed_at"`
}
