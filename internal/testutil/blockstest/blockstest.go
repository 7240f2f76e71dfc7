// SPDX-License-Identifier: MPL-2.0

// Package blockstest builds block declarations and runtime children for
// tests.
//
// Use NewDeclaration with functional options to describe only the fields a
// test cares about:
//
//	decl := blockstest.NewDeclaration("FOO", "foo %1",
//		blockstest.WithShape(blocks.ShapeReporter),
//		blockstest.WithInputs("%s"))
package blockstest

import (
	"github.com/sbtools/blockresolve/pkg/blocks"
)

type (
	// DeclarationOption configures a declaration built by NewDeclaration.
	DeclarationOption func(*blocks.Declaration)
)

// NewDeclaration returns a stack block in the grey category with the given
// ID and spec, adjusted by opts.
func NewDeclaration(id blocks.ID, spec string, opts ...DeclarationOption) blocks.Declaration {
	decl := blocks.Declaration{
		ID:       id,
		Spec:     spec,
		Shape:    blocks.ShapeStack,
		Category: blocks.CategoryGrey,
	}
	for _, opt := range opts {
		opt(&decl)
	}
	return decl
}

// WithShape sets the declared shape.
func WithShape(shape blocks.Shape) DeclarationOption {
	return func(d *blocks.Declaration) { d.Shape = shape }
}

// WithCategory sets the declared category.
func WithCategory(category blocks.Category) DeclarationOption {
	return func(d *blocks.Declaration) { d.Category = category }
}

// WithSelector sets the selector.
func WithSelector(selector string) DeclarationOption {
	return func(d *blocks.Declaration) { d.Selector = selector }
}

// WithInputs sets the input type tags.
func WithInputs(inputs ...string) DeclarationOption {
	return func(d *blocks.Declaration) { d.Inputs = inputs }
}

// WithLoopArrow marks the block as looping.
func WithLoopArrow() DeclarationOption {
	return func(d *blocks.Declaration) { d.HasLoopArrow = true }
}

// Table wraps declarations in a command table without extensions.
func Table(decls ...blocks.Declaration) *blocks.CommandTable {
	return &blocks.CommandTable{Commands: decls}
}

// Label returns a label child.
func Label(text string) blocks.Child {
	return blocks.Child{IsLabel: true, Value: text}
}

// Labels returns one label child per word.
func Labels(words ...string) []blocks.Child {
	out := make([]blocks.Child, len(words))
	for i, w := range words {
		out[i] = Label(w)
	}
	return out
}

// Dropdown returns a dropdown input child.
func Dropdown(value string) blocks.Child {
	return blocks.Child{IsInput: true, Shape: blocks.ChildShapeDropdown, Value: value}
}

// String returns a string input child.
func String(value string) blocks.Child {
	return blocks.Child{IsInput: true, Shape: "string", Value: value}
}

// Number returns a number input child.
func Number(value string) blocks.Child {
	return blocks.Child{IsInput: true, Shape: "number", Value: value}
}

// Color returns a colour input child.
func Color(value string) blocks.Child {
	return blocks.Child{IsInput: true, IsColor: true, Shape: "color", Value: value}
}

// Reporter returns a nested reporter block child.
func Reporter() blocks.Child {
	return blocks.Child{IsBlock: true, Shape: "reporter"}
}

// Children concatenates children and child slices built by the helpers
// above. Arguments must be blocks.Child or []blocks.Child.
func Children(parts ...any) []blocks.Child {
	var out []blocks.Child
	for _, p := range parts {
		switch v := p.(type) {
		case blocks.Child:
			out = append(out, v)
		case []blocks.Child:
			out = append(out, v...)
		default:
			panic("blockstest.Children: unsupported argument")
		}
	}
	return out
}
