// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/sbtools/blockresolve/pkg/blockspec"

	"github.com/spf13/cobra"
)

func newHashCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <spec...>",
		Short: "Print the lookup hash of a block spec",
		Long: `Print the lookup hash of a block spec.

Arguments are joined with single spaces. Input placeholders may be written
as %1 or %s; both hash the same way.`,
		Example: `  blockresolve hash "move %1 steps"
  blockresolve hash say %s for %n secs`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.stdout, blockspec.HashSpec(strings.Join(args, " ")))
			return nil
		},
	}
}

func newTokenizeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <spec...>",
		Short: "Split a block spec into labels, inputs and icons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := blockspec.ParseSpec(strings.Join(args, " "))
			for _, tok := range parsed.Parts {
				line := tokenKindStyle.Render(tok.Kind.String()) + " " + tok.Text
				if tok.IsIcon() {
					if glyph, ok := blockspec.IconGlyph(tok.IconName()); ok {
						line += " " + SubtitleStyle.Render(glyph)
					}
				}
				fmt.Fprintln(app.stdout, line)
			}
			fmt.Fprintf(app.stdout, "%s %s\n", tokenKindStyle.Render("hash"), parsed.Hash)
			return nil
		},
	}
}
