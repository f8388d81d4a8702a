package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for errors
func Validate(cfg *Config) []error {
	var errs []error

	if cfg.Mongo.URI == "" {
		errs = append(errs, ValidationError{"mongo.uri", "required"})
	}

	if cfg.Auth.JWTSecret == "" {
		errs = append(errs, ValidationError{"auth.jwt_secret", "required"})
	}

	if cfg.Matching.Threshold < 0 || cfg.Matching.Threshold > 1 {
		errs = append(errs, ValidationError{"matching.threshold", "must be between 0 and 1"})
	}

	if cfg.Matching.Oracle.Provider != "gemini" && cfg.Matching.Oracle.Provider != "openai" {
		errs = append(errs, ValidationError{"matching.oracle.provider", "must be 'gemini' or 'openai'"})
	}

	if cfg.Matching.Oracle.APIKey == "" {
		errs = append(errs, ValidationError{"matching.oracle.api_key", "required"})
	}

	if cfg.Server.BaseURL != "" && !strings.HasPrefix(cfg.Server.BaseURL, "http") {
		errs = append(errs, ValidationError{"server.base_url", "must be an http(s) URL"})
	}

	// Notification channels are optional, but partial credentials are a
	// misconfiguration rather than an opt-out.
	smtp := cfg.Notify.SMTP
	if smtp.Username != "" && smtp.Password == "" {
		errs = append(errs, ValidationError{"notify.smtp.password", "required when username is set"})
	}

	tw := cfg.Notify.Twilio
	if (tw.AccountSID != "" || tw.AuthToken != "" || tw.FromNumber != "") &&
		(tw.AccountSID == "" || tw.AuthToken == "" || tw.FromNumber == "") {
		errs = append(errs, ValidationError{"notify.twilio", "account_sid, auth_token and from_number must all be set"})
	}

	return errs
}
