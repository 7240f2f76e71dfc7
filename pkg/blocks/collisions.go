// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"slices"
	"sort"
)

// Collision is a hash shared by more than one definition.
type Collision struct {
	Hash        string
	Definitions []*Definition
	// Covered is true when every definition in the bucket has a
	// disambiguation rule; otherwise registration order decides.
	Covered bool
}

// Collisions returns every hash bucket with more than one definition,
// sorted by hash.
func (r *Registry) Collisions() []Collision {
	var out []Collision
	for hash, bucket := range r.byHash {
		if len(bucket) < 2 {
			continue
		}
		covered := true
		for _, def := range bucket {
			if !r.rules.HasCheck(def.id) {
				covered = false
				break
			}
		}
		out = append(out, Collision{
			Hash:        hash,
			Definitions: slices.Clone(bucket),
			Covered:     covered,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hash < out[j].Hash })
	return out
}
