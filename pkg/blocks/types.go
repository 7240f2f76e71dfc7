// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ShapeHat is an event block that starts a script.
	ShapeHat Shape = "hat"
	// ShapeCap is a terminal block; nothing can be attached below it.
	ShapeCap Shape = "cap"
	// ShapeStack is an ordinary command block.
	ShapeStack Shape = "stack"
	// ShapeBoolean is a hexagonal predicate reporter.
	ShapeBoolean Shape = "boolean"
	// ShapeReporter is a rounded value reporter.
	ShapeReporter Shape = "reporter"
	// ShapeRing is a reporter wrapped in a ring.
	ShapeRing Shape = "ring"
	// ShapeCat is a hat drawn with cat ears.
	ShapeCat Shape = "cat"

	// CategoryMotion is the motion category.
	CategoryMotion Category = "motion"
	// CategoryLooks is the looks category.
	CategoryLooks Category = "looks"
	// CategorySound is the sound category.
	CategorySound Category = "sound"
	// CategoryVariables is the variables category.
	CategoryVariables Category = "variables"
	// CategoryList is the list category.
	CategoryList Category = "list"
	// CategoryEvents is the events category.
	CategoryEvents Category = "events"
	// CategoryControl is the control category.
	CategoryControl Category = "control"
	// CategorySensing is the sensing category.
	CategorySensing Category = "sensing"
	// CategoryOperators is the operators category.
	CategoryOperators Category = "operators"
	// CategoryCustom is the "my blocks" category.
	CategoryCustom Category = "custom"
	// CategoryCustomArg is the category of custom block arguments.
	CategoryCustomArg Category = "custom-arg"
	// CategoryExtension is the generic extension category.
	CategoryExtension Category = "extension"
	// CategoryGrey is used for unknown blocks.
	CategoryGrey Category = "grey"
	// CategoryObsolete is used for blocks removed from the editor.
	CategoryObsolete Category = "obsolete"
)

var (
	// ErrInvalidShape is returned when a Shape value is not one of the defined shapes.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrInvalidCategory is returned when a Category value is not known to the registry.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidID is returned when an ID is empty or contains whitespace.
	ErrInvalidID = errors.New("invalid block ID")

	builtinCategories = []Category{
		CategoryMotion, CategoryLooks, CategorySound, CategoryVariables,
		CategoryList, CategoryEvents, CategoryControl, CategorySensing,
		CategoryOperators, CategoryCustom, CategoryCustomArg, CategoryExtension,
		CategoryGrey, CategoryObsolete,
	}
)

type (
	// ID identifies a block definition ("MOTION_MOVESTEPS", "pen.clear").
	ID string

	// Shape is the structural class of a block.
	Shape string

	// Category is the semantic group of a block. It selects the block's
	// default colour and doubles as an override keyword.
	Category string

	// InvalidIDError is returned when an ID is structurally invalid.
	// It wraps ErrInvalidID for errors.Is() compatibility.
	InvalidIDError struct {
		Value ID
	}

	// InvalidShapeError is returned when a Shape value is not recognized.
	// It wraps ErrInvalidShape for errors.Is() compatibility.
	InvalidShapeError struct {
		Value Shape
		// ID is the block the shape was declared on, if any.
		ID ID
	}

	// InvalidCategoryError is returned when a Category value is not recognized.
	// It wraps ErrInvalidCategory for errors.Is() compatibility.
	InvalidCategoryError struct {
		Value Category
		ID    ID
	}
)

// AllShapes returns every shape in canonical order.
func AllShapes() []Shape {
	return []Shape{ShapeHat, ShapeCap, ShapeStack, ShapeBoolean, ShapeReporter, ShapeRing, ShapeCat}
}

// BuiltinCategories returns the categories every registry knows, in
// canonical order. Registries add their extension categories to these.
func BuiltinCategories() []Category {
	out := make([]Category, len(builtinCategories))
	copy(out, builtinCategories)
	return out
}

// String returns the string representation of the ID.
func (id ID) String() string { return string(id) }

// Validate returns nil if the ID is non-empty and free of whitespace.
//
//goplint:nonzero
func (id ID) Validate() error {
	if id == "" || strings.ContainsFunc(string(id), isSpace) {
		return &InvalidIDError{Value: id}
	}
	return nil
}

// String returns the string representation of the Shape.
func (s Shape) String() string { return string(s) }

// Validate returns nil if the Shape is one of the defined shapes.
// The zero value is not valid; Resolve treats it as "any shape".
//
//goplint:nonzero
func (s Shape) Validate() error {
	switch s {
	case ShapeHat, ShapeCap, ShapeStack, ShapeBoolean, ShapeReporter, ShapeRing, ShapeCat:
		return nil
	default:
		return &InvalidShapeError{Value: s}
	}
}

// String returns the string representation of the Category.
func (c Category) String() string { return string(c) }

// IsBuiltin reports whether c is one of the built-in categories.
func (c Category) IsBuiltin() bool {
	for _, b := range builtinCategories {
		if c == b {
			return true
		}
	}
	return false
}

// Error implements the error interface for InvalidIDError.
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid block ID %q (must be non-empty without whitespace)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidIDError) Unwrap() error { return ErrInvalidID }

// Error implements the error interface for InvalidShapeError.
func (e *InvalidShapeError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("block %s: invalid shape %q (valid: hat, cap, stack, boolean, reporter, ring, cat)", e.ID, e.Value)
	}
	return fmt.Sprintf("invalid shape %q (valid: hat, cap, stack, boolean, reporter, ring, cat)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidShapeError) Unwrap() error { return ErrInvalidShape }

// Error implements the error interface for InvalidCategoryError.
func (e *InvalidCategoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("block %s: unknown category %q", e.ID, e.Value)
	}
	return fmt.Sprintf("unknown category %q", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidCategoryError) Unwrap() error { return ErrInvalidCategory }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
