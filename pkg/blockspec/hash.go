// SPDX-License-Identifier: MPL-2.0

package blockspec

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is the marker every input placeholder is reduced to.
const Placeholder = "_"

type (
	// pass is one step of MinifyHash. Passes run in declaration order and
	// each one may assume the normalization done by the passes before it.
	pass struct {
		name  string
		apply func(string) string
	}
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	punctuation = strings.NewReplacer(",", "", "%", "", "?", "", ":", "")

	diacritics = strings.NewReplacer(
		"ß", "ss",
		"ẞ", "ss",
		"ä", "a",
		"Ä", "a",
		"ö", "o",
		"Ö", "o",
		"ü", "u",
		"Ü", "u",
	)

	minifyPasses = []pass{
		{name: "expand-placeholder", apply: expandPlaceholder},
		{name: "strip-punctuation", apply: punctuation.Replace},
		{name: "fold-diacritics", apply: diacritics.Replace},
		{name: "fix-ellipsis", apply: fixEllipsis},
		{name: "trim-lower", apply: trimLower},
	}
)

// HashSpec computes the registry key of a spec string: every input
// placeholder becomes " _ " and the result is passed through MinifyHash.
//
//	HashSpec("say %1 for %2 secs") == "say _ for _ secs"
func HashSpec(spec string) string {
	return MinifyHash(inputPattern.ReplaceAllLiteralString(spec, " "+Placeholder+" "))
}

// MinifyHash canonicalizes an already placeholder-free string. The passes are,
// in order: underscore expansion and whitespace collapse, removal of
// ",%?:", diacritic folding (ß→ss, ä→a, ö→o, ü→u), ellipsis normalization,
// and finally trimming and lowercasing.
func MinifyHash(s string) string {
	for _, p := range minifyPasses {
		s = p.apply(s)
	}
	return s
}

func expandPlaceholder(s string) string {
	s = strings.ReplaceAll(s, Placeholder, " "+Placeholder+" ")
	return whitespaceRun.ReplaceAllLiteralString(s, " ")
}

func fixEllipsis(s string) string {
	s = strings.ReplaceAll(s, ". . .", "...")
	if strings.TrimSpace(s) == "…" {
		return "..."
	}
	return s
}

func trimLower(s string) string {
	// A Caser carries state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
