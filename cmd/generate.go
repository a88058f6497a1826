package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/docindex/internal/config"
	"github.com/itsmostafa/docindex/internal/render"
	"github.com/itsmostafa/docindex/internal/watch"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	collapsed  bool
	watchMode  bool
)

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the index to this file instead of stdout")
	rootCmd.Flags().BoolVar(&collapsed, "collapsed", false, "Collapse everything below the top-level letters")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Regenerate the output whenever the index file changes (requires --output)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := *settings
	cfg.DocRoot = args[1]

	if !watchMode {
		return generateFile(input, &cfg, cmd.OutOrStdout())
	}

	if cfg.Output == "" {
		return &UsageError{Msg: "--watch requires --output"}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate := func(context.Context) error {
		return generateFile(input, &cfg, cmd.OutOrStdout())
	}
	if err := regenerate(ctx); err != nil {
		slog.Error("Initial generation failed", "input", input, "error", err)
	}

	w, err := watch.New(input, watch.DefaultDebounce, regenerate)
	if err != nil {
		return err
	}
	slog.Info("Watching index file", "input", input, "output", cfg.Output)
	return w.Run(ctx)
}

// generateFile renders input and writes it to cfg.Output, or stdout when no
// output file is configured. Nothing is written when generation fails.
func generateFile(input string, cfg *config.Config, stdout io.Writer) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading index file: %w", err)
	}

	var buf bytes.Buffer
	stats, err := render.Generate(&buf, string(data), cfg.RenderOptions())
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	slog.Info("Wrote index", "output", cfg.Output, "groups", stats.Groups, "links", stats.Links)
	return nil
}
