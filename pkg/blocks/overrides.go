// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"regexp"
)

const (
	// DiffAdded marks a block added in a diff.
	DiffAdded = "+"
	// DiffRemoved marks a block removed in a diff.
	DiffRemoved = "-"

	loopKeyword = "loop"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// Info is the presentation record of one block occurrence.
type Info struct {
	// Block is the resolved definition, nil for unknown blocks.
	Block *Definition
	Shape Shape
	// Category is empty when an explicit Color replaces it.
	Category Category
	// CategoryIsDefault is true while Category still comes from Block.
	CategoryIsDefault bool
	// Color is an explicit "#rgb" or "#rrggbb" colour.
	Color        string
	HasLoopArrow bool
	// Diff is DiffAdded, DiffRemoved or empty.
	Diff string
}

// NewInfo seeds an Info from a resolved definition.
func NewInfo(def *Definition) Info {
	return Info{
		Block:             def,
		Shape:             def.Shape(),
		Category:          def.Category(),
		CategoryIsDefault: true,
		HasLoopArrow:      def.HasLoopArrow(),
	}
}

// UnknownInfo is the Info of an occurrence that did not resolve.
func UnknownInfo(shape Shape) Info {
	return Info{
		Shape:             shape,
		Category:          CategoryObsolete,
		CategoryIsDefault: true,
	}
}

// IsColor reports whether token is a "#rgb" or "#rrggbb" colour literal.
func IsColor(token string) bool {
	return hexColorPattern.MatchString(token)
}

// ApplyOverrides applies annotation tokens to info from left to right and
// returns the result. A colour clears the category; a category keyword
// replaces it; a shape keyword replaces the shape; "loop" sets the loop
// arrow for good; "+" and "-" set the diff marker. Later tokens win and
// unknown tokens are ignored.
func (r *Registry) ApplyOverrides(info Info, tokens []string) Info {
	for _, tok := range tokens {
		switch {
		case IsColor(tok):
			info.Color = tok
			info.Category = ""
			info.CategoryIsDefault = false
		case r.IsCategory(tok):
			info.Category = Category(tok)
			info.CategoryIsDefault = false
		case Shape(tok).Validate() == nil:
			info.Shape = Shape(tok)
		case tok == loopKeyword:
			info.HasLoopArrow = true
		case tok == DiffAdded || tok == DiffRemoved:
			info.Diff = tok
		}
	}
	return info
}
