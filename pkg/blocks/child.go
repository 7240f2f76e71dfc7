// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"strings"

	"github.com/sbtools/blockresolve/pkg/blockspec"
)

// ChildShapeDropdown is the Shape of a dropdown menu input.
const ChildShapeDropdown = "dropdown"

// Child is one element of a parsed block occurrence, as produced by the
// authoring-text parser. Exactly one of IsInput, IsBlock and IsLabel is
// normally set; IsColor refines an input.
type Child struct {
	IsInput bool
	IsBlock bool
	IsLabel bool
	IsColor bool
	// Shape is the structural tag of an input or nested block
	// ("dropdown", "number", "string", "boolean", "reporter").
	Shape string
	// Value is the literal text of a label or input.
	Value string
}

// IsDropdown reports whether c is a dropdown input.
func (c Child) IsDropdown() bool {
	return c.IsInput && c.Shape == ChildShapeDropdown
}

// RuntimeHash computes the lookup key of an occurrence from its children:
// labels contribute their text, every other child a placeholder.
func RuntimeHash(children []Child) string {
	words := make([]string, 0, len(children))
	for _, c := range children {
		if c.IsLabel {
			words = append(words, c.Value)
			continue
		}
		words = append(words, blockspec.Placeholder)
	}
	return blockspec.MinifyHash(strings.Join(words, " "))
}

// BlockName joins the words of an occurrence made only of labels. It
// returns false if any child is not a label.
func BlockName(children []Child) (string, bool) {
	words := make([]string, 0, len(children))
	for _, c := range children {
		if !c.IsLabel {
			return "", false
		}
		words = append(words, c.Value)
	}
	return strings.Join(words, " "), true
}

func firstChild(children []Child) (Child, bool) {
	if len(children) == 0 {
		return Child{}, false
	}
	return children[0], true
}

func lastChild(children []Child) (Child, bool) {
	if len(children) == 0 {
		return Child{}, false
	}
	return children[len(children)-1], true
}
