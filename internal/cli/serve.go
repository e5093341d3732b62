package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/colorcraft/colorcraft/internal/server"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the colour API over HTTP",
		Long: `Serve extraction, analysis and suggestions over HTTP.

Endpoints:
  GET  /                     health check
  POST /api/extract-colors   multipart "file", ?n_colors=3..10
  POST /api/analyze-colors   {"colors": [...]}
  POST /api/suggest-colors   {"colors": [...]}, optional ?scheme=
  POST /api/full-analysis    extraction followed by analysis

Settings come from COLORCRAFT_* environment variables or a .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := global.cfg
			if cmd.Flags().Changed("listen") {
				cfg.ListenAddr = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, global.logger.Named("server")).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":8000", "address to listen on (overrides COLORCRAFT_LISTEN_ADDR)")

	return cmd
}
