package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keepsake/internal/audit"
	"keepsake/internal/config"
)

func newAuditCommand(ctx *commandContext) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check the generated site for broken references",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			siteDir := cfg.Paths.OutputDir
			if v := strings.TrimSpace(outputDir); v != "" {
				if siteDir, err = config.ExpandPath(v); err != nil {
					return fmt.Errorf("resolve output dir: %w", err)
				}
			}

			report, err := audit.Inspect(siteDir, cfg.Site.BasePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if report.OK() {
				message := fmt.Sprintf("%d references across %d pages", report.Refs, report.Pages)
				fmt.Fprintln(out, renderStatusLine("Site audit", statusOK, message, colorize))
				return nil
			}

			rows := make([][]string, 0, len(report.Missing))
			for _, missing := range report.Missing {
				rows = append(rows, []string{missing.Page, missing.Ref})
			}
			fmt.Fprintln(out, renderTable([]string{"Page", "Missing reference"}, rows))
			fmt.Fprintln(out, renderStatusLine("Site audit", statusError,
				fmt.Sprintf("%d broken references", len(report.Missing)), colorize))
			return fmt.Errorf("audit found %d broken references", len(report.Missing))
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "", "Audit this directory instead of the configured output")
	return cmd
}
