// SPDX-License-Identifier: MPL-2.0

// Package platform holds the runtime.GOOS names the config and test
// helpers switch on.
package platform
