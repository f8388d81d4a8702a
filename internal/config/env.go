package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match // Keep original if env var not set
	})
}

// expandConfigEnvVars expands environment variables in config string fields
func expandConfigEnvVars(cfg *Config) {
	cfg.Mongo.URI = expandEnvVars(cfg.Mongo.URI)
	cfg.Auth.JWTSecret = expandEnvVars(cfg.Auth.JWTSecret)
	cfg.Matching.Oracle.APIKey = expandEnvVars(cfg.Matching.Oracle.APIKey)
	cfg.Notify.SMTP.Username = expandEnvVars(cfg.Notify.SMTP.Username)
	cfg.Notify.SMTP.Password = expandEnvVars(cfg.Notify.SMTP.Password)
	cfg.Notify.SMTP.From = expandEnvVars(cfg.Notify.SMTP.From)
	cfg.Notify.Twilio.AccountSID = expandEnvVars(cfg.Notify.Twilio.AccountSID)
	cfg.Notify.Twilio.AuthToken = expandEnvVars(cfg.Notify.Twilio.AuthToken)
	cfg.Notify.Twilio.FromNumber = expandEnvVars(cfg.Notify.Twilio.FromNumber)
}
