// SPDX-License-Identifier: MPL-2.0

// Package language holds the per-locale keyword tables consumed by block
// resolution.
//
// A Table carries localized command specs, aliases and renamed-block specs
// (merged into the registry's hash index) plus the keyword lists that
// disambiguation rules consult: math function names, sound effect names,
// micro:bit gesture names and the "other scripts" phrases of the stop block.
//
// Tables are stored as TOML packs. The packs under locales/ are embedded in
// the binary; users can add their own with LoadPack. Every pack except
// English inherits the English keyword lists it leaves empty.
//
// Tables must be treated as read-only once loaded; the registry and the
// resolution rules read them without synchronization.
package language
