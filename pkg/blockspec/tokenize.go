// SPDX-License-Identifier: MPL-2.0

package blockspec

import (
	"regexp"
	"strconv"
)

var (
	// inputPattern matches one input placeholder: a percent sign, one
	// alphanumeric character and an optional dotted type tag.
	inputPattern = regexp.MustCompile(`%[a-zA-Z0-9](?:\.[a-zA-Z0-9]+)?`)

	inputNumberPattern = regexp.MustCompile(`%([0-9]+)`)

	// splitPattern finds every token boundary in a spec. Group 1 is an input,
	// group 2 an icon; a match with neither group is a whitespace separator.
	splitPattern = regexp.MustCompile(`(` + inputPattern.String() + `)|(@[a-zA-Z]+)|\s+`)
)

// Parsed is the result of ParseSpec.
type Parsed struct {
	// Spec is the original spec string.
	Spec string
	// Parts is the tokenized spec.
	Parts []Token
	// Inputs holds the raw text of every input placeholder, in order.
	Inputs []string
	// Hash is HashSpec(Spec).
	Hash string
}

// Tokenize splits a spec string into labels, input placeholders and icon
// references. Whitespace separates tokens and is never emitted.
func Tokenize(spec string) []Token {
	var tokens []Token
	last := 0
	for _, m := range splitPattern.FindAllStringSubmatchIndex(spec, -1) {
		if m[0] > last {
			tokens = append(tokens, Label(spec[last:m[0]]))
		}
		switch {
		case m[2] >= 0:
			tokens = append(tokens, Input(spec[m[2]:m[3]]))
		case m[4] >= 0:
			tokens = append(tokens, Icon(spec[m[4]:m[5]]))
		}
		last = m[1]
	}
	if last < len(spec) {
		tokens = append(tokens, Label(spec[last:]))
	}
	return tokens
}

// ParseSpec tokenizes a spec and collects its inputs and hash in one pass.
// It is used for procedure definitions, whose specs are not in the registry.
func ParseSpec(spec string) Parsed {
	parts := Tokenize(spec)
	var inputs []string
	for _, p := range parts {
		if p.IsInput() {
			inputs = append(inputs, p.Text)
		}
	}
	return Parsed{
		Spec:   spec,
		Parts:  parts,
		Inputs: inputs,
		Hash:   HashSpec(spec),
	}
}

// InputNumber returns the number of a numbered placeholder ("%2" → 2),
// or 0 when part carries no number.
func InputNumber(part string) int {
	m := inputNumberPattern.FindStringSubmatch(part)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// IsInputPlaceholder reports whether s is exactly one input placeholder.
func IsInputPlaceholder(s string) bool {
	loc := inputPattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
