// SPDX-License-Identifier: MPL-2.0

// Package blockspec tokenizes block spec strings and reduces them to the
// canonical hash keys used for registry lookup.
//
// A spec string describes the surface layout of a block: literal label words,
// input placeholders ("%1", "%n", "%m.effect") and icon references
// ("@greenFlag"), separated by whitespace:
//
//	move %1 steps
//	when @greenFlag clicked
//	set %m.effect effect to %n
//
// Tokenize splits a spec into Label, Input and Icon tokens. HashSpec replaces
// every input placeholder with a canonical "_" marker and then applies
// MinifyHash, so that specs differing only in case, placeholder spelling,
// selected punctuation or a handful of diacritics share one key.
//
// Every function in this package is pure and safe for concurrent use.
package blockspec
