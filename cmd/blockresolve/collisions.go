// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCollisionsCommand(app *App) *cobra.Command {
	var (
		lang      string
		uncovered bool
	)

	cmd := &cobra.Command{
		Use:   "collisions",
		Short: "List hashes shared by more than one block",
		Long: `List hashes shared by more than one block.

A collision is covered when every one of its blocks has a
disambiguation rule; uncovered collisions fall back to table order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.newSession(lang)
			if err != nil {
				app.renderIssue(err)
				return err
			}

			shown := 0
			for _, c := range sess.registry.Collisions() {
				if uncovered && c.Covered {
					continue
				}
				ids := make([]string, len(c.Definitions))
				for i, d := range c.Definitions {
					ids[i] = d.ID().String()
				}
				mark := SuccessStyle.Render("✓")
				if !c.Covered {
					mark = WarningStyle.Render("✗")
				}
				fmt.Fprintf(app.stdout, "%s %s\n    %s\n", mark, KeyStyle.Render(c.Hash), strings.Join(ids, ", "))
				shown++
			}
			fmt.Fprintln(app.stdout, SubtitleStyle.Render(fmt.Sprintf("%d collision(s)", shown)))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language pack to index in addition to English (default from config)")
	cmd.Flags().BoolVar(&uncovered, "uncovered", false, "only list collisions without a disambiguation rule")

	return cmd
}
