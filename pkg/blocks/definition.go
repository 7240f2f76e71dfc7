// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"slices"

	"github.com/sbtools/blockresolve/pkg/blockspec"
)

// Definition is an immutable block descriptor. The registry hands out
// pointers to shared definitions; every method that would change one
// returns a copy instead.
type Definition struct {
	id           ID
	spec         string
	parts        []blockspec.Token
	selector     string
	inputs       []string
	shape        Shape
	category     Category
	hasLoopArrow bool
	hash         string
}

// ID returns the block's unique identifier.
func (d *Definition) ID() ID { return d.id }

// Spec returns the canonical English spec string.
func (d *Definition) Spec() string { return d.spec }

// Parts returns the tokenized spec.
func (d *Definition) Parts() []blockspec.Token { return slices.Clone(d.parts) }

// Selector returns the serialization key ("forward:", "sb3:MOTION_MOVESTEPS").
func (d *Definition) Selector() string { return d.selector }

// Inputs returns the type tag of each input slot in order.
func (d *Definition) Inputs() []string { return slices.Clone(d.inputs) }

// Shape returns the structural class of the block.
func (d *Definition) Shape() Shape { return d.shape }

// Category returns the semantic group of the block.
func (d *Definition) Category() Category { return d.category }

// HasLoopArrow reports whether the block is drawn with a loop arrow.
func (d *Definition) HasLoopArrow() bool { return d.hasLoopArrow }

// Hash returns the canonical hash of the spec.
func (d *Definition) Hash() string { return d.hash }

// WithShape returns a copy of d with its shape replaced.
func (d *Definition) WithShape(shape Shape) *Definition {
	c := d.clone()
	c.shape = shape
	return c
}

// String returns the block ID.
func (d *Definition) String() string { return string(d.id) }

func (d *Definition) clone() *Definition {
	c := *d
	c.parts = slices.Clone(d.parts)
	c.inputs = slices.Clone(d.inputs)
	return &c
}
