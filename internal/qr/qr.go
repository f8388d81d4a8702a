// Package qr renders scannable links to item detail pages.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator encodes item detail links as QR images.
type Generator struct {
	baseURL string
}

// NewGenerator creates a generator rooted at the public base URL.
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: baseURL}
}

// ItemLink returns the canonical detail page URL for an item.
func (g *Generator) ItemLink(itemID string) string {
	return fmt.Sprintf("%s/items/%s", g.baseURL, itemID)
}

// DataURI returns a data:image/png;base64 payload of a QR code pointing at
// the item's detail page, sized for inline embedding in HTML email.
func (g *Generator) DataURI(itemID string) (string, error) {
	png, err := qrcode.Encode(g.ItemLink(itemID), qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
