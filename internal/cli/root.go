// Package cli implements the technogroop command-line interface: the HTTP
// server, database migrations and the one-shot content seed.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"technogroop/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	cfg     *config.Config
	verbose bool
}

// Execute runs the CLI with ctx, which is cancelled on SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	a := &app{}

	root := &cobra.Command{
		Use:           "technogroop",
		Short:         "Techno Groop website server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			a.cfg = cfg
			slog.SetDefault(slog.New(newLogHandler(os.Stderr, cfg.IsDev(), a.verbose)))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newServeCmd())
	root.AddCommand(a.newMigrateCmd())
	root.AddCommand(a.newSeedCmd())

	return root.ExecuteContext(ctx)
}
