package notify

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/lostective/lostective/internal/config"
)

// TwilioCaller implements Caller using Twilio programmable voice.
type TwilioCaller struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioCaller creates a Twilio caller from config. Returns nil (not an
// error) when credentials are missing, disabling the channel.
func NewTwilioCaller(cfg *config.TwilioConfig) *TwilioCaller {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioCaller{client: client, from: cfg.FromNumber}
}

// Call places a voice call that reads the message aloud.
func (c *TwilioCaller) Call(_ context.Context, to, message string) error {
	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(message)); err != nil {
		return fmt.Errorf("failed to escape call message: %w", err)
	}

	params := &twilioapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetTwiml(fmt.Sprintf("<Response><Say>%s</Say></Response>", escaped.String()))

	if _, err := c.client.Api.CreateCall(params); err != nil {
		return fmt.Errorf("failed to create call: %w", err)
	}
	return nil
}
