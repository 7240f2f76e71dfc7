// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sbtools/blockresolve/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags of one root command instance.
type rootFlags struct {
	verbose bool
	cfgFile string
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "blockresolve",
		Short: "Look up and disambiguate Scratch blocks by spec hash",
		Long: TitleStyle.Render("blockresolve") + SubtitleStyle.Render(" - look up and disambiguate Scratch blocks by spec hash") + `

blockresolve indexes every block definition of the command table under the
hash of its spec, in English and in every loaded language pack, and resolves
a parsed block occurrence to exactly one definition.

` + SubtitleStyle.Render("Examples:") + `
  blockresolve hash "move %1 steps"             Print the hash of a spec
  blockresolve resolve length of [list v]       Resolve an occurrence
  blockresolve resolve --lang de Wenn die grüne Flagge angeklickt
  blockresolve collisions                       List ambiguous hashes
  blockresolve config show                      Show current configuration`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.loadConfig(cmd.Context(), flags.cfgFile)
			cfg := app.config()
			if !flags.verbose {
				flags.verbose = cfg.UI.Verbose
			}
			app.verbose = flags.verbose
			setupLogger(app.stderr, cfg.LogLevel, flags.verbose)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is $HOME/.config/blockresolve/config.cue)")

	rootCmd.AddCommand(newHashCommand(app))
	rootCmd.AddCommand(newTokenizeCommand(app))
	rootCmd.AddCommand(newResolveCommand(app))
	rootCmd.AddCommand(newCollisionsCommand(app))
	rootCmd.AddCommand(newLanguagesCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// Execute builds the production App and runs the root command.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(exitCode(err))
	}
}

// setupLogger installs a charm logger as the slog default handler.
// Verbose output forces the debug level.
func setupLogger(w io.Writer, level config.LogLevel, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
	slog.SetDefault(slog.New(logger))
	return logger
}
