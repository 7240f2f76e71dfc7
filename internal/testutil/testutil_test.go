// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "BLOCKRESOLVE_TESTUTIL_PROBE"
	t.Cleanup(MustUnsetenv(t, key))

	cleanup := MustSetenv(t, key, "one")
	if got := os.Getenv(key); got != "one" {
		t.Fatalf("Getenv = %q, want one", got)
	}
	cleanup()
	if _, ok := os.LookupEnv(key); ok {
		t.Error("variable should be unset after cleanup")
	}
}

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	path := MustWriteFile(t, dir, "pack.toml", "code = \"en\"\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "code = \"en\"\n" {
		t.Errorf("content = %q", data)
	}
}

func TestMustUnsetenv_Restores(t *testing.T) {
	const key = "BLOCKRESOLVE_TESTUTIL_PROBE_UNSET"
	t.Cleanup(MustSetenv(t, key, "kept"))

	restore := MustUnsetenv(t, key)
	if _, ok := os.LookupEnv(key); ok {
		t.Fatal("variable should be unset")
	}
	restore()
	if got := os.Getenv(key); got != "kept" {
		t.Errorf("Getenv = %q after restore, want kept", got)
	}
}
