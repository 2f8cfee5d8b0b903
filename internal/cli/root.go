package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rtstage/rtstage/internal/branding"
	"github.com/rtstage/rtstage/internal/config"
	"github.com/rtstage/rtstage/internal/logging"
	"github.com/rtstage/rtstage/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	cfgFile  string
	envFile  string
	verbose  bool
	strategy string
	linkTest bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file with tool options")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with build variables (process environment wins)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each step to stderr")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", config.DefaultStrategy, "Library directory lookup: auto, query or direct")
	rootCmd.PersistentFlags().BoolVar(&linkTest, "link-test", false, "Also stage the test harness library")
	addStageFlags(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` finds the toolchain's shared standard library (libstd-*.so,
libstd-*.dylib or std-*.dll) and links or copies it next to the build
artifacts, so binaries built with -C prefer-dynamic can load it.

Run it from a build script: it reads OUT_DIR, RUSTC, TARGET and
CARGO_ENCODED_RUSTFLAGS (or RUSTUP_HOME and RUSTUP_TOOLCHAIN) from the
environment. A successful run prints nothing.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStage,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", branding.CLIName(), err)
	}
	return err
}

// loadConfig builds the run configuration. Only flags the user actually set
// override environment and config file values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		overrides[config.KeyStrategy] = strategy
	}
	if flags.Changed("link-test") {
		overrides[config.KeyLinkTest] = linkTest
	}
	if flags.Changed("verbose") {
		overrides[config.KeyVerbose] = verbose
	}
	if flags.Changed("emit-rerun") {
		overrides[config.KeyEmitRerun] = emitRerun
	}

	file := cfgFile
	if file == "" {
		file = os.Getenv(branding.EnvVar("config"))
	}

	return config.Load(config.LoadOptions{
		ConfigFile: file,
		EnvFile:    envFile,
		Overrides:  overrides,
	})
}

// newLocator dispatches the configured strategy and hands it the logger
// and the stream for compiler diagnostics.
func newLocator(cfg *config.Config, log zerolog.Logger, stderr io.Writer) toolchain.Locator {
	loc := toolchain.Dispatch(cfg.Options.Strategy, cfg.Env)
	switch l := loc.(type) {
	case *toolchain.QueryLocator:
		l.Log = log
		l.Stderr = stderr
	case *toolchain.DirectLocator:
		l.Log = log
	}
	return loc
}

func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.Options.Verbose)
}
