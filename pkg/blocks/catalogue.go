// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"slices"

	"github.com/sbtools/blockresolve/pkg/blockspec"
	"github.com/sbtools/blockresolve/pkg/language"
)

// ev3ButtonPorts are the dropdown values of the EV3 "button pressed" block.
// The micro:bit equivalent uses letters and "any".
var ev3ButtonPorts = []string{"1", "2", "3", "4"}

// DefaultRules returns the rules for the built-in command table. english
// supplies the "other scripts in sprite/stage" phrases for the stop block.
func DefaultRules(english *language.Table) *RuleSet {
	osis := slices.Clone(english.Osis)

	return NewRuleSet().
		Disambiguate("OPERATORS_MATHOP", "SENSING_OF", firstInputIn(func(lang *language.Table) []string { return lang.Math })).
		Disambiguate("SOUND_CHANGEEFFECTBY", "LOOKS_CHANGEEFFECTBY", dropdownMatches(func(lang *language.Table) []string { return lang.SoundEffects })).
		Disambiguate("SOUND_SETEFFECTO", "LOOKS_SETEFFECTTO", dropdownMatches(func(lang *language.Table) []string { return lang.SoundEffects })).
		Disambiguate("DATA_LENGTHOFLIST", "OPERATORS_LENGTH", inputShapeAt(lastChild, ChildShapeDropdown)).
		Disambiguate("DATA_LISTCONTAINSITEM", "OPERATORS_CONTAINS", inputShapeAt(firstChild, ChildShapeDropdown)).
		Disambiguate("pen.setColor", "pen.setHue", lastIsColor).
		Disambiguate("microbit.whenGesture", "gdxfor.whenGesture", dropdownMatches(func(lang *language.Table) []string { return lang.MicrobitWhen })).
		Disambiguate("ev3.buttonPressed", "microbit.isButtonPressed", dropdownMatches(func(*language.Table) []string { return ev3ButtonPorts })).
		SpecialCase("CONTROL_STOP", stopOtherScripts(osis))
}

// firstInputIn accepts when the first child is an input whose value is in
// the keyword list, and abstains when the first child is not an input.
func firstInputIn(keywords func(*language.Table) []string) PairTest {
	return func(children []Child, lang *language.Table) Verdict {
		first, ok := firstChild(children)
		if !ok || !first.IsInput {
			return Abstain
		}
		return VerdictOf(slices.Contains(keywords(lang), first.Value))
	}
}

// dropdownMatches accepts when any dropdown child's value hashes equal to a
// keyword. Without children it abstains.
func dropdownMatches(keywords func(*language.Table) []string) PairTest {
	return func(children []Child, lang *language.Table) Verdict {
		if len(children) == 0 {
			return Abstain
		}
		list := keywords(lang)
		for _, c := range children {
			if c.Shape != ChildShapeDropdown {
				continue
			}
			value := blockspec.MinifyHash(c.Value)
			for _, k := range list {
				if blockspec.MinifyHash(k) == value {
					return Accept
				}
			}
		}
		return Reject
	}
}

// inputShapeAt accepts when the child picked by pick is an input of the
// given shape. It abstains when that child is missing or not an input.
func inputShapeAt(pick func([]Child) (Child, bool), shape string) PairTest {
	return func(children []Child, _ *language.Table) Verdict {
		c, ok := pick(children)
		if !ok || !c.IsInput {
			return Abstain
		}
		return VerdictOf(c.Shape == shape)
	}
}

// lastIsColor accepts a colour input or a nested block (a reporter usually
// computes an RGB value).
func lastIsColor(children []Child, _ *language.Table) Verdict {
	last, ok := lastChild(children)
	if !ok {
		return Abstain
	}
	return VerdictOf((last.IsInput && last.IsColor) || last.IsBlock)
}

// stopOtherScripts turns the stop cap into a stack block when it stops
// only the other scripts of the sprite or stage.
func stopOtherScripts(osis []string) SpecialCaseRule {
	return func(candidate *Definition, children []Child) *Definition {
		last, ok := lastChild(children)
		if !ok || !last.IsInput {
			return nil
		}
		if slices.Contains(osis, last.Value) {
			return candidate.WithShape(ShapeStack)
		}
		return nil
	}
}
