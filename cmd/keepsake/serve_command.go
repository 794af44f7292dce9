package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"keepsake/internal/logging"
	"keepsake/internal/preview"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the generated site locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if v := strings.TrimSpace(bind); v != "" {
				cfg.Serve.Bind = v
			}

			if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "index.html")); err != nil {
				return fmt.Errorf("no generated site at %s; run `keepsake build` first", cfg.Paths.OutputDir)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s at http://%s%s (Ctrl+C to stop)\n",
				cfg.Paths.OutputDir, cfg.Serve.Bind, cfg.Site.BasePath)
			srv := preview.New(cfg.Paths.OutputDir, cfg.Site.BasePath, cfg.Serve.Bind, logger)
			return srv.Start(signalCtx)
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (host:port)")
	return cmd
}
