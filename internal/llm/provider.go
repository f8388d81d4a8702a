package llm

import (
	"context"
	"fmt"

	"github.com/lostective/lostective/internal/config"
)

// Provider defines the interface for LLM chat completion. The matching
// pipeline uses it as a binary same-item oracle, but the contract is a plain
// prompt-in, text-out completion.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, system, prompt string) (string, error)
	Close() error
}

// NewProvider creates an LLM provider based on config.
func NewProvider(cfg *config.OracleConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("oracle API key not configured")
	}
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown oracle provider: %s", cfg.Provider)
	}
}
