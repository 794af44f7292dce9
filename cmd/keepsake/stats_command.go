package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"keepsake/internal/builder"
	"keepsake/internal/logging"
	"keepsake/internal/textutil"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the export and the generated site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inv, err := builder.New(cfg, logging.NewNop()).Inventory(cmd.Context())
			if err != nil {
				return err
			}

			rows := [][]string{
				{"Posts", strconv.Itoa(inv.Posts)},
				{"Albums", strconv.Itoa(inv.Albums)},
				{"Photos", strconv.Itoa(inv.Photos)},
				{"Export media files", strconv.Itoa(inv.ExportMedia)},
				{"Copied media files", strconv.Itoa(inv.CopiedMedia)},
				{"Generated pages", strconv.Itoa(inv.Pages)},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Item", "Count"}, rows, 2))
			if inv.NewestPost != 0 {
				fmt.Fprintf(out, "Posts span %s to %s\n",
					textutil.FormatDateShort(inv.OldestPost),
					textutil.FormatDateShort(inv.NewestPost))
			}
			if inv.Pages == 0 {
				fmt.Fprintln(out, renderStatusLine("Site", statusInfo,
					"not built yet; run `keepsake build`", shouldColorize(out)))
			}
			return nil
		},
	}
}
