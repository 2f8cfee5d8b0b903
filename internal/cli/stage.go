package cli

import (
	"fmt"

	"github.com/rtstage/rtstage/internal/stage"
	"github.com/spf13/cobra"
)

var emitRerun bool

func addStageFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&emitRerun, "emit-rerun", false, "Print cargo::rerun-if-env-changed directives before staging")
}

func init() {
	addStageFlags(stageCmd)
	rootCmd.AddCommand(stageCmd)
}

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Stage the runtime library into the build output (default)",
	Long: `Resolve the destination from OUT_DIR, locate the toolchain library
directory, and link or copy the standard library into the destination.
Running it again over a staged destination does nothing.

Example:
  OUT_DIR=target/debug/build/app-1234/out RUSTC=rustc TARGET=x86_64-unknown-linux-gnu rtstage stage
  rtstage stage --strategy direct --link-test`,
	Args: cobra.NoArgs,
	RunE: runStage,
}

func runStage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	locator := newLocator(cfg, log, cmd.ErrOrStderr())

	if cfg.Options.EmitRerun {
		for _, d := range stage.RerunDirectives(locator) {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
	}

	p := &stage.Pipeline{
		Locator: locator,
		Stager:  &stage.Stager{LinkTest: cfg.Options.LinkTest, Log: log},
		Log:     log,
	}
	result, err := p.Run(cmd.Context(), cfg.Env)
	if err != nil {
		return err
	}

	for _, st := range result.Staged {
		log.Info().Str("kind", string(st.Kind)).Str("dst", st.Dst).Str("action", string(st.Action)).Msg("staged")
	}
	return nil
}
