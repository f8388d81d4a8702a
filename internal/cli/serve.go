package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lostective/lostective/internal/auth"
	"github.com/lostective/lostective/internal/server"
	"github.com/lostective/lostective/internal/task"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  `Serve the report, browse, claim and login API. Matching runs as background work per report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			d, err := wire(ctx, cfg)
			if err != nil {
				return err
			}
			defer d.close(ctx)

			if err := os.MkdirAll(cfg.Server.UploadDir, 0o755); err != nil {
				return fmt.Errorf("failed to create upload dir: %w", err)
			}

			tokens := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
			runner := task.NewRunner()
			defer runner.Wait()

			srv := server.NewServer(cfg, d.store, tokens, d.pipeline, d.notifier, d.qr, runner)

			fmt.Printf("Listening on %s\n", cfg.Server.Addr)
			return srv.Run()
		},
	}
}
