// Package notify delivers best-effort match and claim notifications over
// email and voice calls. Nothing in this package returns an error to the
// matching pipeline: a failed dispatch is logged and never invalidates the
// match that triggered it.
package notify

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/lostective/lostective/internal/qr"
	"github.com/lostective/lostective/pkg/models"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// IsEmail reports whether contact info is email-shaped.
func IsEmail(contact string) bool {
	return emailPattern.MatchString(contact)
}

// IsPhone reports whether contact info is phone-shaped (E.164-style prefix).
func IsPhone(contact string) bool {
	return strings.HasPrefix(contact, "+")
}

// Mailer dispatches a single email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Caller places a single voice call reading out a message.
type Caller interface {
	Call(ctx context.Context, to, message string) error
}

// Service formats and dispatches notifications.
type Service struct {
	mailer Mailer
	caller Caller
	qr     *qr.Generator
}

// NewService creates a notification service. Either channel may be nil when
// its credentials are not configured; dispatch on a nil channel is skipped
// with a log line.
func NewService(mailer Mailer, caller Caller, qrGen *qr.Generator) *Service {
	return &Service{
		mailer: mailer,
		caller: caller,
		qr:     qrGen,
	}
}

// NotifyMatch tells the counterpart's reporter that newItem may be their
// item. Email is attempted only for email-shaped contact info; a voice call
// only when the counterpart opted in and the contact is phone-shaped.
func (s *Service) NotifyMatch(ctx context.Context, counterpart, newItem *models.Item) {
	qrData, err := s.qr.DataURI(newItem.ID)
	if err != nil {
		log.Printf("Warning: QR generation failed for item %s: %v", newItem.ID, err)
	}

	contact := counterpart.ContactInfo

	if contact != "" && IsEmail(contact) {
		subject := "Possible Match for Your Lost Item!"
		body := formatMatchEmail(counterpart, newItem, s.qr.ItemLink(newItem.ID), qrData)
		if s.mailer == nil {
			log.Printf("Email channel not configured, skipping notification to %s", contact)
		} else if err := s.mailer.Send(ctx, contact, subject, body); err != nil {
			log.Printf("Warning: email notification to %s failed: %v", contact, err)
		} else {
			log.Printf("Match email sent to %s", contact)
		}
	} else {
		log.Printf("Warning: invalid or missing email: %s", contact)
	}

	if counterpart.WantsCall && IsPhone(contact) {
		message := formatMatchCall(counterpart, newItem)
		if s.caller == nil {
			log.Printf("Call channel not configured, skipping call to %s", contact)
		} else if err := s.caller.Call(ctx, contact, message); err != nil {
			log.Printf("Warning: call to %s failed: %v", contact, err)
		} else {
			log.Printf("Match call placed to %s", contact)
		}
	}
}

// NotifyClaim tells an item's reporter that a claim was submitted, and sends
// the claimant a confirmation. Best-effort like NotifyMatch.
func (s *Service) NotifyClaim(ctx context.Context, item *models.Item, claim *models.Claim) {
	if item.ReporterEmail != "" && IsEmail(item.ReporterEmail) {
		subject := "Claim submitted for your item: " + item.Name
		body := formatClaimOwnerEmail(item, claim)
		if s.mailer == nil {
			log.Printf("Email channel not configured, skipping claim notification")
		} else if err := s.mailer.Send(ctx, item.ReporterEmail, subject, body); err != nil {
			log.Printf("Warning: claim email to owner %s failed: %v", item.ReporterEmail, err)
		}
	}

	if item.WantsCall && IsPhone(item.ContactInfo) {
		message := formatClaimCall(item)
		if s.caller == nil {
			log.Printf("Call channel not configured, skipping claim call")
		} else if err := s.caller.Call(ctx, item.ContactInfo, message); err != nil {
			log.Printf("Warning: claim call to %s failed: %v", item.ContactInfo, err)
		}
	}

	if IsEmail(claim.Email) {
		subject := "Claim Received for " + item.Name
		body := formatClaimantEmail(item, claim)
		if s.mailer == nil {
			return
		}
		if err := s.mailer.Send(ctx, claim.Email, subject, body); err != nil {
			log.Printf("Warning: confirmation email to claimant %s failed: %v", claim.Email, err)
		}
	}
}
