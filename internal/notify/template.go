package notify

import (
	"fmt"

	"github.com/lostective/lostective/pkg/models"
)

// formatMatchEmail builds the HTML body for a match notification. The QR
// image is embedded as a data URI so the mail stands alone.
func formatMatchEmail(counterpart, newItem *models.Item, link, qrData string) string {
	qrBlock := fmt.Sprintf(`<a href="%s">%s</a>`, link, link)
	if qrData != "" {
		qrBlock = fmt.Sprintf(`<a href="%s"><img src="%s" alt="View Item QR" width="200" height="200" /></a>`, link, qrData)
	}

	return fmt.Sprintf(`Hi,<br><br>

We may have found a match for your %s item: <b>%s</b>.<br><br>

Matched with %s item:<br>
- Name: %s<br>
- Description: %s<br>
- Location: %s<br>
- Date &amp; Time: %s %s<br><br>

You can view the item details by scanning the QR code below or clicking the link:<br>
%s<br><br>

Please log in to Lostective to confirm the match.<br><br>

– Lostective Agent<br>
Reuniting Things One At A Time<br><br>

<small>DO NOT REPLY. THIS IS AUTO-GENERATED.</small>`,
		counterpart.Type, counterpart.Name,
		newItem.Type,
		newItem.Name,
		newItem.Description,
		newItem.Location,
		newItem.Date, newItem.Time,
		qrBlock,
	)
}

// formatMatchCall builds the spoken message for a match call.
func formatMatchCall(counterpart, newItem *models.Item) string {
	return fmt.Sprintf(
		"Hello! A match is found for your %s item: %s at %s. Check Lostective for details.",
		counterpart.Type, counterpart.Name, newItem.Location,
	)
}

// formatClaimOwnerEmail builds the body telling a reporter about a claim.
func formatClaimOwnerEmail(item *models.Item, claim *models.Claim) string {
	return fmt.Sprintf(`Hello,<br><br>

Someone has submitted a claim for your item "%s" reported as %s.<br><br>

Claim details:<br>
- Name: %s<br>
- Email: %s<br>
- Phone: %s<br>
- Proof: %s<br><br>

Please review and contact the claimant directly if valid.<br><br>

– Lostective Agent`,
		item.Name, item.Type,
		claim.Name, claim.Email, claim.Phone, claim.Proof,
	)
}

// formatClaimCall builds the spoken message for a claim call.
func formatClaimCall(item *models.Item) string {
	return fmt.Sprintf(
		"Hello! This is the Lostective agent. Someone has claimed your item %s. Please check your email for details.",
		item.Name,
	)
}

// formatClaimantEmail builds the confirmation body for the claimant.
func formatClaimantEmail(item *models.Item, claim *models.Claim) string {
	return fmt.Sprintf(`Hi %s,<br><br>

Your claim for "%s" has been received. The owner has been notified and may contact you soon.<br><br>

– Lostective Agent`,
		claim.Name, item.Name,
	)
}
