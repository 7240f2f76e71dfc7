// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"github.com/sbtools/blockresolve/pkg/language"
)

const (
	// Abstain means the rule has no opinion; the candidate is kept.
	Abstain Verdict = iota
	// Accept keeps the candidate.
	Accept
	// Reject drops the candidate.
	Reject
)

type (
	// Verdict is the result of a disambiguation rule.
	Verdict int

	// DisambiguationRule decides whether candidate matches a runtime
	// occurrence whose hash collides with other definitions.
	DisambiguationRule func(candidate *Definition, children []Child, lang *language.Table) Verdict

	// SpecialCaseRule may return a modified copy of candidate to use in its
	// place. Returning nil keeps candidate unchanged.
	SpecialCaseRule func(candidate *Definition, children []Child) *Definition

	// PairTest is the predicate shared by the two halves of a
	// Disambiguate pair.
	PairTest func(children []Child, lang *language.Table) Verdict

	// RuleSet collects disambiguation and special-case rules keyed by block
	// ID. It is mutable while rules are registered; Build copies it, so a
	// registry never observes later registrations.
	RuleSet struct {
		checks   map[ID]DisambiguationRule
		special  map[ID]SpecialCaseRule
		bindings []ruleBinding
	}

	ruleBinding struct {
		id   ID
		kind string
	}
)

// VerdictOf converts a boolean into Accept or Reject.
func VerdictOf(ok bool) Verdict {
	if ok {
		return Accept
	}
	return Reject
}

// Not swaps Accept and Reject. Abstain stays Abstain.
func (v Verdict) Not() Verdict {
	switch v {
	case Accept:
		return Reject
	case Reject:
		return Accept
	default:
		return Abstain
	}
}

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "abstain"
	}
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		checks:  make(map[ID]DisambiguationRule),
		special: make(map[ID]SpecialCaseRule),
	}
}

// Check attaches a disambiguation rule to id, replacing any earlier one.
func (s *RuleSet) Check(id ID, rule DisambiguationRule) *RuleSet {
	s.checks[id] = rule
	s.bindings = append(s.bindings, ruleBinding{id: id, kind: "disambiguation rule"})
	return s
}

// Disambiguate registers a complementary pair: id1 takes the verdict of
// test and id2 its negation.
func (s *RuleSet) Disambiguate(id1, id2 ID, test PairTest) *RuleSet {
	s.Check(id1, func(_ *Definition, children []Child, lang *language.Table) Verdict {
		return test(children, lang)
	})
	s.Check(id2, func(_ *Definition, children []Child, lang *language.Table) Verdict {
		return test(children, lang).Not()
	})
	return s
}

// SpecialCase attaches a special-case rule to id, replacing any earlier one.
func (s *RuleSet) SpecialCase(id ID, rule SpecialCaseRule) *RuleSet {
	s.special[id] = rule
	s.bindings = append(s.bindings, ruleBinding{id: id, kind: "special case"})
	return s
}

// HasCheck reports whether a disambiguation rule is attached to id.
func (s *RuleSet) HasCheck(id ID) bool {
	_, ok := s.checks[id]
	return ok
}

// validate reports the first binding whose ID is not in known, in
// registration order.
func (s *RuleSet) validate(known map[ID]*Definition) error {
	for _, b := range s.bindings {
		if _, ok := known[b.id]; !ok {
			return &UnknownIDError{ID: b.id, Source: b.kind}
		}
	}
	return nil
}

func (s *RuleSet) clone() *RuleSet {
	c := NewRuleSet()
	if s == nil {
		return c
	}
	for id, r := range s.checks {
		c.checks[id] = r
	}
	for id, r := range s.special {
		c.special[id] = r
	}
	c.bindings = append(c.bindings, s.bindings...)
	return c
}
