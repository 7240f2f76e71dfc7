// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sbtools/blockresolve/pkg/language"

	"github.com/spf13/cobra"
)

func newLanguagesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List available language packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.config()
			line := func(code, name, source string) {
				mark := " "
				if strings.EqualFold(code, cfg.Language) {
					mark = SuccessStyle.Render("*")
				}
				fmt.Fprintf(app.stdout, "%s %-6s %s %s\n", mark, KeyStyle.Render(code), name, SubtitleStyle.Render(source))
			}

			for _, code := range language.Codes() {
				tbl, err := language.Embedded(code)
				if err != nil {
					return err
				}
				line(code, tbl.Name, "(embedded)")
			}
			for _, path := range cfg.LanguagePacks {
				tbl, err := language.LoadPack(path)
				if err != nil {
					slog.Warn("skipping language pack", "path", path, "error", err)
					continue
				}
				line(tbl.Code, tbl.Name, path)
			}
			return nil
		},
	}
}
