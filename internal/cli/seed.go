package cli

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"technogroop/internal/cache"
	"technogroop/internal/database"
	"technogroop/internal/seed"
	"technogroop/internal/storage"
)

func (a *app) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace CMS content with the baseline data set",
		Long: `Seed deletes all projects, services, reviews, vacancies and media and
recreates them from the built-in data set in both languages. Images are
uploaded to S3 when it is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(a.cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			runner, cleanup, err := a.seedRunner(db)
			if err != nil {
				return err
			}
			defer cleanup()

			results, err := runner.Run(cmd.Context())
			for _, line := range results {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			return nil
		},
	}
}

// seedRunner wires a seed.Runner from configuration. Valkey and S3 are
// optional: without Valkey runs are not serialized across processes,
// without S3 images keep their source URLs. cleanup closes the Valkey
// connection.
func (a *app) seedRunner(db *sql.DB) (*seed.Runner, func(), error) {
	objects, err := storage.New(a.cfg.S3Endpoint, a.cfg.S3Region, a.cfg.S3AccessKey, a.cfg.S3SecretKey, a.cfg.S3Bucket, a.cfg.S3PublicURL)
	if err != nil {
		return nil, nil, fmt.Errorf("init s3 storage: %w", err)
	}
	if objects == nil {
		slog.Warn("s3 storage not configured, seed keeps image source URLs")
	}

	cleanup := func() {}
	valkey, err := cache.ConnectValkey(a.cfg.ValkeyHost, a.cfg.ValkeyPort, a.cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, seed runs without a lock", "error", err)
		valkey = nil
	} else {
		cleanup = func() { valkey.Close() }
	}

	importer := seed.NewImporter(objects, a.cfg.MediaDir)
	return seed.NewRunner(db, importer, valkey, seed.Baseline()), cleanup, nil
}
