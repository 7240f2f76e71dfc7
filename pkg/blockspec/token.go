// SPDX-License-Identifier: MPL-2.0

package blockspec

import (
	"fmt"
	"strings"
)

const (
	// KindLabel is a literal word of the block's text.
	KindLabel Kind = iota + 1
	// KindInput is an input placeholder such as "%1" or "%m.effect".
	KindInput
	// KindIcon is an icon reference such as "@greenFlag".
	KindIcon
)

type (
	// Kind discriminates the variants of a Token.
	Kind int

	// Token is one element of a tokenized spec string.
	//
	// Text always holds the raw token as it appeared in the spec. For inputs,
	// Type is everything after the percent sign ("1", "n", "m.effect") and
	// Ordinal is the input number for numbered placeholders ("%2" → 2) or 0.
	// For icons, Text includes the leading at-sign.
	Token struct {
		Kind    Kind
		Text    string
		Type    string
		Ordinal int
	}
)

// Label returns a label token.
func Label(text string) Token {
	return Token{Kind: KindLabel, Text: text}
}

// Input returns an input placeholder token for a raw placeholder like "%1".
func Input(raw string) Token {
	return Token{
		Kind:    KindInput,
		Text:    raw,
		Type:    strings.TrimPrefix(raw, "%"),
		Ordinal: InputNumber(raw),
	}
}

// Icon returns an icon reference token for a raw reference like "@greenFlag".
func Icon(raw string) Token {
	return Token{Kind: KindIcon, Text: raw}
}

// String returns the name of the token kind.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindInput:
		return "input"
	case KindIcon:
		return "icon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsLabel reports whether the token is a literal label word.
func (t Token) IsLabel() bool { return t.Kind == KindLabel }

// IsInput reports whether the token is an input placeholder.
func (t Token) IsInput() bool { return t.Kind == KindInput }

// IsIcon reports whether the token is an icon reference.
func (t Token) IsIcon() bool { return t.Kind == KindIcon }

// IconName returns the icon name without the leading at-sign.
// It returns "" for non-icon tokens.
func (t Token) IconName() string {
	if t.Kind != KindIcon {
		return ""
	}
	return strings.TrimPrefix(t.Text, "@")
}

// String returns the raw token text.
func (t Token) String() string { return t.Text }
