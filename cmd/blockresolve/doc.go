// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the blockresolve CLI: a harness that hashes block
// specs, resolves block occurrences against the registry and reports hash
// collisions.
package cmd
