// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sbtools/blockresolve/pkg/blocks"
)

const dropdownSuffix = " v"

var (
	// ErrInvalidChild is the sentinel error wrapped by InvalidChildError.
	ErrInvalidChild = errors.New("invalid block child")

	closers = map[rune]rune{'[': ']', '(': ')', '<': '>', '{': '}'}
)

// InvalidChildError is returned for command-line text that is not a valid
// child. It wraps ErrInvalidChild for errors.Is() compatibility.
type InvalidChildError struct {
	Text   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidChildError) Error() string {
	return fmt.Sprintf("invalid block child %q: %s", e.Text, e.Reason)
}

// Unwrap returns ErrInvalidChild for errors.Is() compatibility.
func (e *InvalidChildError) Unwrap() error { return ErrInvalidChild }

// parseChildren turns command-line arguments into the children of one block
// occurrence. An argument may hold several children separated by spaces:
//
//	word         label
//	[text]       string input
//	[value v]    dropdown input (also (value v))
//	(10)         number input
//	<b>          boolean input
//	{block}      nested reporter
//	[#ff0000]    colour input
func parseChildren(args []string) ([]blocks.Child, error) {
	var children []blocks.Child
	for _, arg := range args {
		parts, err := splitChildren(arg)
		if err != nil {
			return nil, err
		}
		for _, part := range parts {
			children = append(children, parseChild(part))
		}
	}
	return children, nil
}

// splitChildren splits s at spaces outside brackets. A lone "<" or ">" is
// a label so that comparison operators can be typed.
func splitChildren(s string) ([]string, error) {
	runes := []rune(s)
	var (
		parts []string
		cur   strings.Builder
		open  []rune
	)
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	for i, r := range runes {
		spaced := (i == 0 || unicode.IsSpace(runes[i-1])) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1]))
		switch {
		case (r == '<' || r == '>') && spaced:
			// comparison operator label
		case len(open) > 0 && r == open[len(open)-1]:
			open = open[:len(open)-1]
		case r == '<' && cur.Len() > 0 && len(open) == 0:
			// inside a word
		case closers[r] != 0:
			open = append(open, closers[r])
		case len(open) == 0 && (r == ']' || r == ')' || r == '}'):
			return nil, &InvalidChildError{Text: s, Reason: fmt.Sprintf("unexpected %q", r)}
		case len(open) == 0 && unicode.IsSpace(r):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	if len(open) > 0 {
		return nil, &InvalidChildError{Text: s, Reason: fmt.Sprintf("missing %q", open[len(open)-1])}
	}
	flush()
	return parts, nil
}

// parseChild classifies one bracket group or word.
func parseChild(part string) blocks.Child {
	if len(part) < 2 {
		return blocks.Child{IsLabel: true, Value: part}
	}
	inner := part[1 : len(part)-1]
	first, last := rune(part[0]), rune(part[len(part)-1])
	if closers[first] != last {
		return blocks.Child{IsLabel: true, Value: part}
	}

	switch first {
	case '[':
		if blocks.IsColor(inner) {
			return blocks.Child{IsInput: true, IsColor: true, Shape: "color", Value: inner}
		}
		if v, ok := strings.CutSuffix(inner, dropdownSuffix); ok {
			return blocks.Child{IsInput: true, Shape: blocks.ChildShapeDropdown, Value: v}
		}
		return blocks.Child{IsInput: true, Shape: "string", Value: inner}
	case '(':
		if v, ok := strings.CutSuffix(inner, dropdownSuffix); ok {
			return blocks.Child{IsInput: true, Shape: blocks.ChildShapeDropdown, Value: v}
		}
		return blocks.Child{IsInput: true, Shape: "number", Value: inner}
	case '<':
		return blocks.Child{IsInput: true, Shape: "boolean", Value: inner}
	default:
		return blocks.Child{IsBlock: true, Shape: "reporter", Value: inner}
	}
}
