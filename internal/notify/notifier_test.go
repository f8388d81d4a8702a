package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/lostective/lostective/internal/qr"
	"github.com/lostective/lostective/pkg/models"
)

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type fakeCaller struct {
	calls []placedCall
	err   error
}

type placedCall struct {
	to      string
	message string
}

func (c *fakeCaller) Call(_ context.Context, to, message string) error {
	if c.err != nil {
		return c.err
	}
	c.calls = append(c.calls, placedCall{to: to, message: message})
	return nil
}

func testQR() *qr.Generator {
	return qr.NewGenerator("http://localhost:5173")
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		contact string
		want    bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.org", true},
		{"+15551234567", false},
		{"not-an-email", false},
		{"missing@domain", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEmail(tt.contact); got != tt.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tt.contact, got, tt.want)
		}
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		contact string
		want    bool
	}{
		{"+15551234567", true},
		{"15551234567", false},
		{"user@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPhone(tt.contact); got != tt.want {
			t.Errorf("IsPhone(%q) = %v, want %v", tt.contact, got, tt.want)
		}
	}
}

func TestNotifyMatchEmail(t *testing.T) {
	mailer := &fakeMailer{}
	caller := &fakeCaller{}
	svc := NewService(mailer, caller, testQR())

	counterpart := &models.Item{
		ID:          "l1",
		Name:        "Backpack",
		Type:        models.TypeLost,
		ContactInfo: "owner@example.com",
	}
	newItem := &models.Item{
		ID:          "f1",
		Name:        "Backpack",
		Type:        models.TypeFound,
		Location:    "Library",
		ContactInfo: "finder@example.com",
	}

	svc.NotifyMatch(context.Background(), counterpart, newItem)

	if len(mailer.sent) != 1 {
		t.Fatalf("emails sent = %d, want 1", len(mailer.sent))
	}
	if mailer.sent[0].to != "owner@example.com" {
		t.Errorf("email to = %q, want owner@example.com", mailer.sent[0].to)
	}
	if len(caller.calls) != 0 {
		t.Errorf("calls placed = %d, want 0 (no opt-in)", len(caller.calls))
	}
}

func TestNotifyMatchCall(t *testing.T) {
	mailer := &fakeMailer{}
	caller := &fakeCaller{}
	svc := NewService(mailer, caller, testQR())

	counterpart := &models.Item{
		ID:          "l1",
		Name:        "Phone",
		Type:        models.TypeLost,
		ContactInfo: "+15551234567",
		WantsCall:   true,
	}
	newItem := &models.Item{ID: "f1", Name: "Phone", Type: models.TypeFound}

	svc.NotifyMatch(context.Background(), counterpart, newItem)

	if len(caller.calls) != 1 {
		t.Fatalf("calls placed = %d, want 1", len(caller.calls))
	}
	if caller.calls[0].to != "+15551234567" {
		t.Errorf("call to = %q", caller.calls[0].to)
	}
	// Phone-shaped contact is not email-shaped, so no email goes out.
	if len(mailer.sent) != 0 {
		t.Errorf("emails sent = %d, want 0", len(mailer.sent))
	}
}

func TestNotifyMatchNoOptInNoCall(t *testing.T) {
	caller := &fakeCaller{}
	svc := NewService(&fakeMailer{}, caller, testQR())

	counterpart := &models.Item{
		ID:          "l1",
		Name:        "Phone",
		Type:        models.TypeLost,
		ContactInfo: "+15551234567",
		WantsCall:   false,
	}

	svc.NotifyMatch(context.Background(), counterpart, &models.Item{ID: "f1"})

	if len(caller.calls) != 0 {
		t.Errorf("calls placed = %d, want 0 without opt-in", len(caller.calls))
	}
}

func TestNotifyMatchChannelFailuresDoNotPanic(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	caller := &fakeCaller{err: errors.New("twilio down")}
	svc := NewService(mailer, caller, testQR())

	counterpart := &models.Item{
		ID:          "l1",
		ContactInfo: "owner@example.com",
		WantsCall:   true,
	}

	// Must not panic or surface the errors.
	svc.NotifyMatch(context.Background(), counterpart, &models.Item{ID: "f1"})
}

func TestNotifyMatchNilChannels(t *testing.T) {
	svc := NewService(nil, nil, testQR())

	counterpart := &models.Item{
		ID:          "l1",
		ContactInfo: "+15551234567",
		WantsCall:   true,
	}

	svc.NotifyMatch(context.Background(), counterpart, &models.Item{ID: "f1"})
}

func TestNotifyClaim(t *testing.T) {
	mailer := &fakeMailer{}
	caller := &fakeCaller{}
	svc := NewService(mailer, caller, testQR())

	item := &models.Item{
		ID:            "f1",
		Name:          "Wallet",
		Type:          models.TypeFound,
		ContactInfo:   "+15551234567",
		WantsCall:     true,
		ReporterEmail: "finder@example.com",
	}
	claim := &models.Claim{
		Name:  "Jordan",
		Email: "claimant@example.com",
		Proof: "brown leather, two cards inside",
	}

	svc.NotifyClaim(context.Background(), item, claim)

	if len(mailer.sent) != 2 {
		t.Fatalf("emails sent = %d, want 2 (owner + claimant)", len(mailer.sent))
	}
	if mailer.sent[0].to != "finder@example.com" {
		t.Errorf("owner email to = %q", mailer.sent[0].to)
	}
	if mailer.sent[1].to != "claimant@example.com" {
		t.Errorf("claimant email to = %q", mailer.sent[1].to)
	}
	if len(caller.calls) != 1 {
		t.Errorf("calls placed = %d, want 1", len(caller.calls))
	}
}
