// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"github.com/sbtools/blockresolve/pkg/language"
)

// Resolve picks the definition for an occurrence with the given hash.
//
// Candidates in the hash bucket are first filtered by shape: a boolean
// request only matches boolean blocks, a reporter request matches reporters
// and rings, and any other request matches the identical shape. An empty
// request skips the filter. If more than one candidate remains, each one
// with a disambiguation rule is asked about children and dropped on Reject.
// The first survivor in registration order wins, and its special-case rule
// may replace it with a modified copy.
//
// Resolve returns nil when the hash is unknown or no candidate survives.
// A nil lang uses the registry's reference table.
func (r *Registry) Resolve(hash string, requested Shape, children []Child, lang *language.Table) *Definition {
	bucket := r.byHash[hash]
	if len(bucket) == 0 {
		return nil
	}
	if lang == nil {
		lang = r.reference
	}

	candidates := make([]*Definition, 0, len(bucket))
	for _, def := range bucket {
		if shapeAccepts(requested, def.shape) {
			candidates = append(candidates, def)
		}
	}

	if len(candidates) > 1 {
		kept := make([]*Definition, 0, len(candidates))
		for _, def := range candidates {
			if rule, ok := r.rules.checks[def.id]; ok && rule(def, children, lang) == Reject {
				continue
			}
			kept = append(kept, def)
		}
		candidates = kept
	}
	if len(candidates) == 0 {
		return nil
	}

	match := candidates[0]
	if special, ok := r.rules.special[match.id]; ok {
		if replacement := special(match, children); replacement != nil {
			match = replacement
		}
	}
	return match
}

// ResolveChildren is Resolve keyed by the runtime hash of children.
func (r *Registry) ResolveChildren(children []Child, requested Shape, lang *language.Table) *Definition {
	return r.Resolve(RuntimeHash(children), requested, children, lang)
}

func shapeAccepts(requested, candidate Shape) bool {
	switch requested {
	case "":
		return true
	case ShapeBoolean:
		return candidate == ShapeBoolean
	case ShapeReporter:
		return candidate == ShapeReporter || candidate == ShapeRing
	default:
		return candidate == requested
	}
}
