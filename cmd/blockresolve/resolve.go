// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sbtools/blockresolve/internal/issue"
	"github.com/sbtools/blockresolve/pkg/blocks"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type resolveFlags struct {
	shape     string
	lang      string
	overrides []string
}

func newResolveCommand(app *App) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve [flags] <child...>",
		Short: "Resolve a block occurrence to its definition",
		Long: `Resolve a block occurrence to its definition.

Each child is a word (label) or a bracket group:

  [text]      string input         (10)      number input
  [value v]   dropdown input       <b>       boolean input
  [#ff0000]   colour input         {block}   nested reporter

Annotation tokens given with --override are applied to the result in order:
a colour, a category or extension name, a shape, "loop", "+" or "-".`,
		Example: `  blockresolve resolve length of [list v]
  blockresolve resolve --shape boolean "[a] contains [b] ?"
  blockresolve resolve --override "#ff0000" --override + move (10) steps`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runResolve(app, flags, args)
			if err != nil {
				app.renderIssue(err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&flags.shape, "shape", "", "requested shape (hat, cap, stack, boolean, reporter, ring, cat); empty matches any")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "language of the occurrence (default from config)")
	cmd.Flags().StringArrayVar(&flags.overrides, "override", nil, "annotation token applied to the result (repeatable)")

	return cmd
}

func runResolve(app *App, flags *resolveFlags, args []string) error {
	requested := blocks.Shape(flags.shape)
	if requested != "" {
		if err := requested.Validate(); err != nil {
			return issue.NewErrorContext().
				WithOperation("resolve block").
				WithIssue(issue.InvalidShapeId).
				WithSuggestion("Leave --shape empty to match any shape").
				Wrap(err).
				BuildError()
		}
	}

	children, err := parseChildren(args)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("parse block children").
			WithIssue(issue.InvalidChildId).
			WithSuggestion("Quote arguments that contain brackets, e.g. 'say [hello]'").
			Wrap(err).
			BuildError()
	}

	sess, err := app.newSession(flags.lang)
	if err != nil {
		return err
	}

	hash := blocks.RuntimeHash(children)
	def := sess.registry.ResolveChildren(children, requested, sess.lang)

	var info blocks.Info
	if def != nil {
		info = blocks.NewInfo(def)
	} else {
		shape := requested
		if shape == "" {
			shape = blocks.ShapeStack
		}
		info = blocks.UnknownInfo(shape)
	}
	info = sess.registry.ApplyOverrides(info, flags.overrides)

	printInfo(app.stdout, hash, info)

	if def == nil {
		return &ExitError{
			Code: exitNotFound,
			Err: issue.NewErrorContext().
				WithOperation("resolve block").
				WithResource(hash).
				WithIssue(issue.BlockNotFoundId).
				WithSuggestion("Run 'blockresolve hash' on the spec you expected and compare").
				Wrap(fmt.Errorf("no definition for hash %q in language %s", hash, sess.lang.Code)).
				BuildError(),
		}
	}
	return nil
}

func printInfo(w io.Writer, hash string, info blocks.Info) {
	field := func(name, value string) {
		fmt.Fprintf(w, "%s %s\n", fieldStyle.Render(name), value)
	}

	if info.Block != nil {
		field("block", SuccessStyle.Render(info.Block.ID().String()))
		field("spec", info.Block.Spec())
		if sel := info.Block.Selector(); sel != "" {
			field("selector", sel)
		}
	} else {
		field("block", ErrorStyle.Render("(unknown)"))
	}
	field("hash", hash)
	field("shape", info.Shape.String())
	if info.Color != "" {
		field("color", swatch(lipgloss.Color(info.Color), info.Color))
	} else {
		category := categorySwatch(info.Category)
		if !info.CategoryIsDefault {
			category += SubtitleStyle.Render(" (override)")
		}
		field("category", category)
	}
	if info.HasLoopArrow {
		field("loop", strconv.FormatBool(true))
	}
	if info.Diff != "" {
		field("diff", info.Diff)
	}
}
