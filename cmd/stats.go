package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/docindex/internal/index"
	"github.com/itsmostafa/docindex/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <index-file>",
	Short: "Summarise an index file without generating it",
	Args:  exactArgs(1, "must specify input filename"),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading index file: %w", err)
		}

		nodes, err := index.Build(index.Parse(string(data)), index.BuildOptions{
			IndexPage:       settings.IndexPage,
			StrictCrossRefs: settings.StrictCrossRefs,
		})
		if err != nil {
			return err
		}
		report.FormatStats(cmd.OutOrStdout(), args[0], index.Collect(nodes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
