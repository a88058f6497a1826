package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/docindex/internal/render"
	"github.com/itsmostafa/docindex/internal/report"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <html-file>",
	Short: "Verify anchors and collapse toggles of a generated index",
	Long: `Parse a previously generated index fragment and report duplicate anchors,
toggles without a matching section or icon, and toggle ids out of order.`,
	Args: exactArgs(1, "must specify the generated html file"),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening html file: %w", err)
		}
		defer f.Close()

		r, err := render.Verify(f)
		if err != nil {
			return err
		}
		report.FormatCheck(cmd.OutOrStdout(), args[0], r)
		if !r.OK() {
			return errCheckFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
