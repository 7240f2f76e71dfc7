// SPDX-License-Identifier: MPL-2.0

package language

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	textlang "golang.org/x/text/language"
)

// EnglishCode is the code of the reference table.
const EnglishCode = "en"

// Table is the keyword table of one locale.
type Table struct {
	// Code is the BCP 47 tag of the locale ("en", "de", "zh-CN").
	Code string `toml:"code"`
	// Name is the native display name of the language.
	Name string `toml:"name"`

	// Commands maps a block ID to its localized spec.
	Commands map[string]string `toml:"commands"`
	// Aliases maps an alternative spec to the block ID it stands for.
	Aliases map[string]string `toml:"aliases"`
	// RenamedBlocks maps a spec a block used to have to its block ID.
	RenamedBlocks map[string]string `toml:"renamed_blocks"`
	// Dropdowns maps localized dropdown values to their canonical value.
	Dropdowns map[string]string `toml:"dropdowns"`

	// Math lists the function names of the math reporter's dropdown.
	Math []string `toml:"math"`
	// SoundEffects lists the effect names of the sound effect blocks.
	SoundEffects []string `toml:"sound_effects"`
	// MicrobitWhen lists the gestures of the micro:bit "when" hat.
	MicrobitWhen []string `toml:"microbit_when"`
	// Osis lists the "other scripts in sprite/stage" phrases.
	Osis []string `toml:"osis"`
}

// Tag returns the parsed language tag, or the undetermined tag if Code does
// not parse.
func (t *Table) Tag() textlang.Tag {
	tag, err := textlang.Parse(t.Code)
	if err != nil {
		return textlang.Und
	}
	return tag
}

// LookupDropdown returns the canonical value for a localized dropdown value.
func (t *Table) LookupDropdown(name string) (string, bool) {
	v, ok := t.Dropdowns[name]
	return v, ok
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	return &Table{
		Code:          t.Code,
		Name:          t.Name,
		Commands:      maps.Clone(t.Commands),
		Aliases:       maps.Clone(t.Aliases),
		RenamedBlocks: maps.Clone(t.RenamedBlocks),
		Dropdowns:     maps.Clone(t.Dropdowns),
		Math:          slices.Clone(t.Math),
		SoundEffects:  slices.Clone(t.SoundEffects),
		MicrobitWhen:  slices.Clone(t.MicrobitWhen),
		Osis:          slices.Clone(t.Osis),
	}
}

// inherit fills every empty keyword list from base.
func (t *Table) inherit(base *Table) {
	if len(t.Math) == 0 {
		t.Math = slices.Clone(base.Math)
	}
	if len(t.SoundEffects) == 0 {
		t.SoundEffects = slices.Clone(base.SoundEffects)
	}
	if len(t.MicrobitWhen) == 0 {
		t.MicrobitWhen = slices.Clone(base.MicrobitWhen)
	}
	if len(t.Osis) == 0 {
		t.Osis = slices.Clone(base.Osis)
	}
}
