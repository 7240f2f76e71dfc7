// SPDX-License-Identifier: MPL-2.0

// Package issue holds the CLI's user-facing failures: ActionableError pairs
// a short message and fix hints with an optional entry of a numbered
// markdown catalogue that is rendered to the terminal with glamour.
package issue
