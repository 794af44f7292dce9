package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"keepsake/internal/builder"
	"keepsake/internal/config"
	"keepsake/internal/logging"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var exportDir string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the archive site from the export",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyPathOverrides(cfg, exportDir, outputDir); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			runID := uuid.NewString()
			logger.Info("build starting",
				logging.String("run_id", runID),
				logging.String("export_dir", cfg.Paths.ExportDir),
				logging.String("output_dir", cfg.Paths.OutputDir))

			res, err := builder.New(cfg, logger).Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Posts", strconv.Itoa(res.Posts)},
				{"Albums", strconv.Itoa(res.Albums)},
				{"Photos", strconv.Itoa(res.Photos)},
				{"Media copied", strconv.Itoa(res.MediaCopied)},
				{"Media skipped", strconv.Itoa(res.MediaSkipped)},
				{"Pages written", strconv.Itoa(len(res.Pages))},
			}
			fmt.Fprintln(out, renderTable([]string{"Item", "Count"}, rows, 2))
			colorize := shouldColorize(out)
			if res.Posts == 0 {
				fmt.Fprintln(out, renderStatusLine("Feed", statusWarn, "no posts found in the export", colorize))
			}
			message := fmt.Sprintf("%d pages in %s", len(res.Pages), res.Elapsed.Round(time.Millisecond))
			fmt.Fprintln(out, renderStatusLine("Archive build", statusOK, message, colorize))
			return nil
		},
	}

	cmd.Flags().StringVar(&exportDir, "export", "", "Override the export directory")
	cmd.Flags().StringVar(&outputDir, "output", "", "Override the output directory")
	return cmd
}

func applyPathOverrides(cfg *config.Config, exportDir, outputDir string) error {
	if v := strings.TrimSpace(exportDir); v != "" {
		expanded, err := config.ExpandPath(v)
		if err != nil {
			return fmt.Errorf("resolve export dir: %w", err)
		}
		cfg.Paths.ExportDir = expanded
	}
	if v := strings.TrimSpace(outputDir); v != "" {
		expanded, err := config.ExpandPath(v)
		if err != nil {
			return fmt.Errorf("resolve output dir: %w", err)
		}
		cfg.Paths.OutputDir = expanded
	}
	return cfg.Validate()
}
