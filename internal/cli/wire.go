package cli

import (
	"context"
	"fmt"

	"github.com/lostective/lostective/internal/config"
	"github.com/lostective/lostective/internal/llm"
	"github.com/lostective/lostective/internal/matcher"
	"github.com/lostective/lostective/internal/notify"
	"github.com/lostective/lostective/internal/qr"
	"github.com/lostective/lostective/internal/store"
)

// loadConfig resolves, loads and validates the configuration.
func loadConfig() (*config.Config, error) {
	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" {
		return nil, fmt.Errorf("config file not found")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("config error: %v\n", e)
		}
		return nil, fmt.Errorf("invalid configuration")
	}
	return cfg, nil
}

// deps holds the wired collaborators shared by the serve and match commands.
type deps struct {
	store    *store.Store
	oracle   llm.Provider
	notifier *notify.Service
	qr       *qr.Generator
	pipeline *matcher.Pipeline
}

// wire connects the store, oracle, notifier and matching pipeline.
func wire(ctx context.Context, cfg *config.Config) (*deps, error) {
	st, err := store.Connect(ctx, &cfg.Mongo)
	if err != nil {
		return nil, err
	}

	oracle, err := llm.NewProvider(&cfg.Matching.Oracle)
	if err != nil {
		_ = st.Close(ctx)
		return nil, fmt.Errorf("failed to create oracle provider: %w", err)
	}

	qrGen := qr.NewGenerator(cfg.Server.BaseURL)

	// Typed nils must not end up inside the interfaces, or the service's
	// channel checks stop working.
	var mailer notify.Mailer
	smtp, err := notify.NewSMTPMailer(&cfg.Notify.SMTP)
	if err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	if smtp != nil {
		mailer = smtp
	}

	var caller notify.Caller
	if tw := notify.NewTwilioCaller(&cfg.Notify.Twilio); tw != nil {
		caller = tw
	}

	notifier := notify.NewService(mailer, caller, qrGen)

	items := st.Items()
	lexical := matcher.NewLexicalMatcher(items, notifier, cfg.Matching.Threshold)
	semantic := matcher.NewSemanticMatcher(items, oracle, notifier)
	pipeline := matcher.NewPipeline(items, lexical, semantic)

	return &deps{
		store:    st,
		oracle:   oracle,
		notifier: notifier,
		qr:       qrGen,
		pipeline: pipeline,
	}, nil
}

// close releases the wired resources.
func (d *deps) close(ctx context.Context) {
	_ = d.oracle.Close()
	_ = d.store.Close(ctx)
}
