package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/docindex/internal/config"
	"github.com/itsmostafa/docindex/internal/report"
	"github.com/itsmostafa/docindex/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	verbose     bool
	strictXrefs bool
)

// settings is the merged configuration of the running command.
var settings *config.Config

var rootCmd = &cobra.Command{
	Use:   "docindex <index-file> <doc-root>",
	Short: "Generate a nested HTML index page from a tagged index file",
	Long: `docindex turns a hand-written index file into the nested, collapsible HTML
fragment embedded in the generated documentation's index page.

Records end with "@end" and fields are separated by "@":

  Navier Stokes@Driven cavity@%navier_stokes/driven_cavity/index.html@end
  NS@^Navier Stokes@end

A second field starting with "%" is a link relative to <doc-root>, one starting
with "^" a cross reference to another label. Anything else nests one level deeper.

Environment Variables:
  DOCINDEX_DOC_ROOT      Default documentation root
  DOCINDEX_COLLAPSED     Collapse everything below the top-level letters
  DOCINDEX_STRICT_XREFS  Reject conflicting cross references
  DOCINDEX_LOG_LEVEL     debug, info, warn or error`,
	Args:          exactArgs(2, "must specify input filename and path to doc directory"),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		settings = cfg
		slog.SetDefault(cfg.NewLogger(cmd.ErrOrStderr(), verbose))
		return nil
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Msg: fmt.Sprintf("%v (usage: %s)", err, cmd.UseLine())}
	})

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&strictXrefs, "strict-xrefs", false, "Reject labels whose cross references point to different targets")
}

func defaultConfigPath() string {
	if p := os.Getenv(config.EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	return ".docindex.yaml"
}

// loadSettings merges defaults, the config file, .env, the environment and
// explicitly set flags, in increasing order of precedence.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strict-xrefs") {
		cfg.StrictCrossRefs = strictXrefs
	}
	if flags.Changed("collapsed") {
		cfg.Collapsed = collapsed
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	return cfg, nil
}

// Execute runs the root command and exits with a code describing the failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.FormatError(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}
