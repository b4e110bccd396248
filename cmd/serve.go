package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abundis28/mintern/internal/api"
	"github.com/abundis28/mintern/internal/approval"
	"github.com/abundis28/mintern/internal/config"
	"github.com/abundis28/mintern/internal/forum"
	"github.com/abundis28/mintern/internal/notifications"
	"github.com/abundis28/mintern/internal/render"
	"github.com/abundis28/mintern/internal/signup"
	"github.com/abundis28/mintern/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the forum front-end server",
	Long:  `Starts the HTTP server that renders the forum pages from the backend JSON API.`,
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

		srv := web.New(web.Config{
			Port:     cfg.Server.Port,
			SiteName: cfg.Server.SiteName,
			AllowAll: cfg.Server.AllowAll,
			Verbose:  verbose,
		})

		// Register all feature routes.
		forum.RegisterRoutes(srv.Router(), forum.NewController(client, renderer, cfg.Server.SiteName))
		signup.RegisterRoutes(srv.Router(), signup.NewController(client, cfg.Server.SiteName))
		approval.RegisterRoutes(srv.Router(), approval.NewController(client, cfg.Server.SiteName))
		notifications.RegisterRoutes(srv.Router(), notifications.NewHandler(client, renderer))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "mintern front end v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Backend API: %s\n", cfg.API.BaseURL)

		return srv.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
