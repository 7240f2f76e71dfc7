// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error instead
// of returning it, reducing boilerplate in table-driven tests.
//
// Helpers that need pkg/blocks live in the blockstest subpackage so that
// packages below pkg/blocks can still import testutil.
package testutil
