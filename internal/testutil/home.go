// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"testing"

	"github.com/sbtools/blockresolve/pkg/platform"
)

// SetHomeDir points the platform's home directory variable (HOME, or
// USERPROFILE on Windows) at dir and returns a cleanup function:
//
//	t.Cleanup(testutil.SetHomeDir(t, t.TempDir()))
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch platform.Current() {
	case platform.Windows:
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}
