package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rtstage/rtstage/internal/config"
	"github.com/rtstage/rtstage/internal/platform"
	"github.com/rtstage/rtstage/internal/stage"
	"github.com/rtstage/rtstage/internal/toolchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(locateCmd)
}

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show where the runtime library is and whether it is staged",
	Long: `Resolve the library directory and extension the same way staging does,
then list every matching library and its state in the destination.
Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cmd, cfg)
		locator := newLocator(cfg, log, cmd.ErrOrStderr())

		loc, err := locator.Locate(cmd.Context(), cfg.Env)
		if err != nil {
			return err
		}

		dest := ""
		if outDir, ok := cfg.Env.Lookup(config.EnvOutDir); ok {
			dest, err = stage.ResolveDestination(outDir)
			if err != nil {
				return err
			}
		}

		candidates, err := stage.Scan(loc.Dir, loc.Ext, cfg.Options.LinkTest)
		if err != nil {
			return err
		}

		printLocation(cmd.OutOrStdout(), cfg, loc, dest, candidates)
		return nil
	},
}

func printLocation(w io.Writer, cfg *config.Config, loc toolchain.Location, dest string, candidates []stage.Candidate) {
	vars := "(none)"
	if set := cfg.Env.Set(); len(set) > 0 {
		vars = strings.Join(set, ", ")
	}
	fmt.Fprintf(w, "Build vars:   %s\n", vars)
	fmt.Fprintf(w, "Strategy:     %s\n", loc.Strategy)
	if name, ok := cfg.Env.Lookup(config.EnvRustupToolchain); ok && loc.Strategy == toolchain.StrategyDirect {
		fmt.Fprintf(w, "Toolchain:    %s\n", toolchain.ParseName(name))
	}
	fmt.Fprintf(w, "Library dir:  %s\n", loc.Dir)
	fmt.Fprintf(w, "Extension:    %s\n", loc.Ext)
	if dest != "" {
		fmt.Fprintf(w, "Destination:  %s\n", dest)
	} else {
		fmt.Fprintf(w, "Destination:  (%s unset)\n", config.EnvOutDir)
	}

	if len(candidates) == 0 {
		fmt.Fprintf(w, "\nNo %s found.\n", stage.Pattern(stage.KindStd, loc.Ext))
		return
	}

	fmt.Fprintln(w, "\nLibraries:")
	for _, c := range candidates {
		state := "-"
		if dest != "" {
			state = stagedState(c.Path, filepath.Join(dest, c.Name))
		}
		fmt.Fprintf(w, "  [%-4s] %-40s %s\n", c.Kind, c.Name, state)
	}
}

// stagedState describes what sits at dst relative to src.
func stagedState(src, dst string) string {
	if target, err := platform.ReadSymlinkTarget(dst); err == nil {
		return "linked -> " + target
	}
	info, err := os.Lstat(dst)
	if err != nil {
		return "not staged"
	}
	if info.IsDir() {
		return "directory in the way"
	}
	if same, err := platform.SameContents(src, dst); err == nil && same {
		return "copied"
	}
	return "stale copy"
}
