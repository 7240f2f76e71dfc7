// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Result holds a decoded document.
type Result[T any] struct {
	// Value is the decoded Go value.
	Value *T

	// Unified is the schema-unified CUE value, for callers that need to
	// inspect fields the Go type does not carry.
	Unified cue.Value
}

// Decode compiles schema, unifies data with the schema definition at
// definition (e.g. "#CommandFile"), validates the result and decodes it
// into a T. Errors from the data carry the file name and the JSON-style path
// of the offending field; errors in the schema itself are reported as
// internal errors.
func Decode[T any](schema, data []byte, definition string, opts ...Option) (*Result[T], error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	unified, filename, err := unify(schema, data, definition, options)
	if err != nil {
		return nil, err
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}

	return &Result[T]{
		Value:   &out,
		Unified: unified,
	}, nil
}

// DecodeMap is Decode for documents that are merged into a generic key/value
// store instead of a struct. Concreteness is off unless an option turns it on.
func DecodeMap(schema, data []byte, definition string, opts ...Option) (map[string]any, error) {
	options := defaultOptions()
	options.concrete = false
	for _, opt := range opts {
		opt(&options)
	}

	unified, filename, err := unify(schema, data, definition, options)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}

func unify(schema, data []byte, definition string, options decodeOptions) (cue.Value, string, error) {
	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckSize(data, options.maxSize, filename); err != nil {
		return cue.Value{}, filename, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, filename, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	dataValue := ctx.CompileBytes(data, cue.Filename(filename))
	if dataValue.Err() != nil {
		return cue.Value{}, filename, FormatError(dataValue.Err(), filename)
	}

	root := schemaValue.LookupPath(cue.ParsePath(definition))
	if root.Err() != nil {
		return cue.Value{}, filename, fmt.Errorf("internal error: schema definition %s not found: %w", definition, root.Err())
	}

	unified := root.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return cue.Value{}, filename, FormatError(err, filename)
	}

	return unified, filename, nil
}
