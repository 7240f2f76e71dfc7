// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// runtime.GOOS values the config directory lookup distinguishes.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Current returns runtime.GOOS.
func Current() string { return runtime.GOOS }
