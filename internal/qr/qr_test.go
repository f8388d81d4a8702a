package qr

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestItemLink(t *testing.T) {
	g := NewGenerator("https://lostective.example.com")

	link := g.ItemLink("abc123")
	if link != "https://lostective.example.com/items/abc123" {
		t.Errorf("ItemLink() = %q", link)
	}
}

func TestDataURI(t *testing.T) {
	g := NewGenerator("http://localhost:5173")

	uri, err := g.DataURI("64f1c0ffee")
	if err != nil {
		t.Fatalf("DataURI() error = %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("DataURI() = %.40q..., want %q prefix", uri, prefix)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}

	// PNG magic bytes
	if len(raw) < 8 || string(raw[1:4]) != "PNG" {
		t.Error("payload is not a PNG image")
	}
}
