package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/config"
	"github.com/abundis28/mintern/internal/export"
	"github.com/abundis28/mintern/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the forum as a static HTML archive",
	Long: `Fetches every question and its answers from the backend API and writes
a self-contained static HTML archive that can be browsed without the
backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		client := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
		renderer := render.NewRenderer(cfg.Forum.PreviewLength)

		exporter := export.New(client, renderer,
			cfg.Export.OutputDir, cfg.Export.IntroFile, cfg.Server.SiteName,
			export.NewReporter())

		n, err := exporter.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("exporting forum: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d questions to %s\n", n, cfg.Export.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
