// SPDX-License-Identifier: MPL-2.0

package config

import "sync/atomic"

// dirOverride replaces the platform config directory when set. It is
// process-wide: callers that set it must not run in parallel.
var dirOverride atomic.Pointer[string]

// OverrideConfigDir makes ConfigDir return dir until the returned function
// restores the previous value:
//
//	defer config.OverrideConfigDir(t.TempDir())()
func OverrideConfigDir(dir string) (restore func()) {
	prev := dirOverride.Swap(&dir)
	return func() { dirOverride.Store(prev) }
}

func overriddenConfigDir() (string, bool) {
	if p := dirOverride.Load(); p != nil && *p != "" {
		return *p, true
	}
	return "", false
}
