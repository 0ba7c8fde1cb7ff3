package cmd

import (
	"fmt"

	"console-server/core/config"
	"console-server/core/logger"
	"console-server/core/storage"
	"console-server/feature/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fetchAssets string

// fetchCmd downloads the console bundle from object storage.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the console bundle from object storage",
	Long: `Mirrors the pre-built console bundle from the configured bucket into
the local asset directory, so a subsequent 'start' can serve it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if fetchAssets != "" {
			cfg.Server.Assets = fetchAssets
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer logg.Sync()

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("creating storage client: %w", err)
		}

		svc := bundle.NewService(store, cfg.Storage.Bucket, logg)
		count, err := svc.Fetch(cmd.Context(), cfg.Server.Assets)
		if err != nil {
			return err
		}

		logg.Info("Bundle fetched",
			zap.Int("files", count),
			zap.String("dest", cfg.Server.Assets))
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchAssets, "assets", "", "Destination directory override")
	RootCmd.AddCommand(fetchCmd)
}
