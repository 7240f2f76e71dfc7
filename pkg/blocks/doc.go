// SPDX-License-Identifier: MPL-2.0

// Package blocks holds the block registry and the lookup engine that maps a
// runtime block occurrence to its definition.
//
// A Registry is built once from a CommandTable (the embedded commands.cue, or
// caller-supplied declarations) and a RuleSet. Definitions are indexed by the
// canonical hash of their spec; several definitions may share a hash, in
// which case Resolve filters them by requested shape and then by the
// disambiguation rules registered for their IDs. After Build returns, the
// registry is read-only and safe for concurrent use.
//
// Resolved definitions are turned into an Info, the mutable presentation
// record, which ApplyOverrides adjusts from trailing annotation words.
package blocks
