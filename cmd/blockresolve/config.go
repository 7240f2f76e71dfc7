// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/sbtools/blockresolve/internal/config"
	"github.com/sbtools/blockresolve/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `blockresolve config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage blockresolve configuration",
		Long: `Manage blockresolve configuration.

Configuration is stored in:
  - Linux: ~/.config/blockresolve/config.cue
  - macOS: ~/Library/Application Support/blockresolve/config.cue
  - Windows: %APPDATA%\blockresolve\config.cue

Environment variables override file values, e.g. BLOCKRESOLVE_LANGUAGE=de.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.config()))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App) error {
	cfg := app.config()
	keyStyle := KeyStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if app.cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), app.cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("language"), valueStyle.Render(cfg.Language))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("log_level"), valueStyle.Render(cfg.LogLevel.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("language_packs"))
	if len(cfg.LanguagePacks) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, p := range cfg.LanguagePacks {
			fmt.Fprintf(w, "  - %s\n", valueStyle.Render(p))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App) error {
	path, created, err := config.CreateDefaultConfig()
	if err != nil {
		err = issue.NewErrorContext().
			WithOperation("create configuration").
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check that the config directory is writable").
			Wrap(err).
			BuildError()
		app.renderIssue(err)
		return err
	}

	if created {
		fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	} else {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", SubtitleStyle.Render("•"), path)
	}
	return nil
}
