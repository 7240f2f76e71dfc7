// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"slices"
	"testing"

	"github.com/sbtools/blockresolve/pkg/blocks"
)

func TestParseChildren(t *testing.T) {
	t.Parallel()

	label := func(v string) blocks.Child { return blocks.Child{IsLabel: true, Value: v} }
	input := func(shape, v string) blocks.Child { return blocks.Child{IsInput: true, Shape: shape, Value: v} }

	tests := []struct {
		name string
		args []string
		want []blocks.Child
	}{
		{
			name: "one child per argument",
			args: []string{"move", "(10)", "steps"},
			want: []blocks.Child{label("move"), input("number", "10"), label("steps")},
		},
		{
			name: "children split inside one argument",
			args: []string{"move (10) steps"},
			want: []blocks.Child{label("move"), input("number", "10"), label("steps")},
		},
		{
			name: "string input keeps spaces",
			args: []string{"say [hello world]"},
			want: []blocks.Child{label("say"), input("string", "hello world")},
		},
		{
			name: "square dropdown",
			args: []string{"length of [list v]"},
			want: []blocks.Child{label("length"), label("of"), input(blocks.ChildShapeDropdown, "list")},
		},
		{
			name: "round dropdown",
			args: []string{"([sqrt v] of (9))"},
			want: []blocks.Child{input("number", "[sqrt v] of (9)")},
		},
		{
			name: "round dropdown at top level",
			args: []string{"(sqrt v) of (9)"},
			want: []blocks.Child{input(blocks.ChildShapeDropdown, "sqrt"), label("of"), input("number", "9")},
		},
		{
			name: "colour input",
			args: []string{"set pen color to [#ff0000]"},
			want: []blocks.Child{
				label("set"), label("pen"), label("color"), label("to"),
				{IsInput: true, IsColor: true, Shape: "color", Value: "#ff0000"},
			},
		},
		{
			name: "boolean input",
			args: []string{"if <> then"},
			want: []blocks.Child{label("if"), input("boolean", ""), label("then")},
		},
		{
			name: "nested reporter",
			args: []string{"contains", "{answer}", "?"},
			want: []blocks.Child{label("contains"), {IsBlock: true, Shape: "reporter", Value: "answer"}, label("?")},
		},
		{
			name: "comparison operator is a label",
			args: []string{"(1) < (2)"},
			want: []blocks.Child{input("number", "1"), label("<"), input("number", "2")},
		},
		{
			name: "greater-than inside a boolean",
			args: []string{"<(a) > (b)>"},
			want: []blocks.Child{input("boolean", "(a) > (b)")},
		},
		{
			name: "unicode label",
			args: []string{"Wenn die grüne Flagge angeklickt"},
			want: []blocks.Child{label("Wenn"), label("die"), label("grüne"), label("Flagge"), label("angeklickt")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseChildren(tt.args)
			if err != nil {
				t.Fatalf("parseChildren(%q) error = %v", tt.args, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseChildren(%q)\n got  %+v\n want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseChildren_Errors(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"say [hello", "(10", "move 10)", "{x"} {
		t.Run(arg, func(t *testing.T) {
			t.Parallel()
			_, err := parseChildren([]string{arg})
			if !errors.Is(err, ErrInvalidChild) {
				t.Errorf("parseChildren(%q) error = %v, want ErrInvalidChild", arg, err)
			}
		})
	}
}
