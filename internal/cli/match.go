package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lostective/lostective/pkg/models"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <item-id>",
		Short: "Run the matching pipeline for one item",
		Long:  `Run the TF-IDF + semantic matching pipeline synchronously for an existing item and print the result. Matches trigger the same notifications as background runs.`,
		Args:  cobra.ExactArgs(1),
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

			result := d.pipeline.Run(ctx, args[0])
			printMatchResult(result)
			return nil
		},
	}
}

// printMatchResult outputs the pipeline result to stdout.
func printMatchResult(result *models.MatchResult) {
	fmt.Println("\n=== Matching Result ===")

	if result.Action == models.ActionItemNotFound {
		fmt.Println("Item not found")
		return
	}

	fmt.Printf("Method: %s\n", result.Method)
	if len(result.Matches) == 0 {
		fmt.Println("Matches: none")
		return
	}

	fmt.Printf("Matches: %d\n", len(result.Matches))
	for _, m := range result.Matches {
		fmt.Printf("  - %s (%s, %s) contact=%s\n", m.Name, m.Type, m.Location, m.ContactInfo)
	}
}
