// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Entry: {
	id:    string & !=""
	spec:  string
	tags?: [...string]
}

#File: {
	entries: [...#Entry]
	name?:   string
}
`

type testEntry struct {
	ID   string   `json:"id"`
	Spec string   `json:"spec"`
	Tags []string `json:"tags,omitempty"`
}

type testFile struct {
	Entries []testEntry `json:"entries"`
	Name    string      `json:"name,omitempty"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid document decodes", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
entries: [
	{id: "MOTION_MOVESTEPS", spec: "move %1 steps"},
	{id: "CONTROL_WAIT", spec: "wait %1 seconds", tags: ["control"]},
]
`)
		res, err := Decode[testFile]([]byte(testSchema), data, "#File")
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(res.Value.Entries) != 2 {
			t.Fatalf("len(Entries) = %d, want 2", len(res.Value.Entries))
		}
		if res.Value.Entries[1].Tags[0] != "control" {
			t.Errorf("Entries[1].Tags = %v", res.Value.Entries[1].Tags)
		}
		if !res.Unified.Exists() {
			t.Error("Unified value should exist")
		}
	})

	t.Run("schema violation reports path", func(t *testing.T) {
		t.Parallel()

		data := []byte(`entries: [{id: "", spec: "x"}]`)
		_, err := Decode[testFile]([]byte(testSchema), data, "#File", WithFilename("table.cue"))
		if err == nil {
			t.Fatal("Decode() should reject an empty id")
		}
		if !strings.Contains(err.Error(), "table.cue") {
			t.Errorf("error should name the file, got: %v", err)
		}
		if !strings.Contains(err.Error(), "entries[0].id") {
			t.Errorf("error should carry the field path, got: %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || !errors.Is(err, ErrValidation) {
			t.Fatalf("error should be a *ValidationError, got %T", err)
		}
		if verr.Filename != "table.cue" || len(verr.Problems) == 0 {
			t.Errorf("ValidationError = %+v", verr)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := Decode[testFile]([]byte(testSchema), []byte(`entries: [`), "#File")
		if err == nil {
			t.Fatal("Decode() should fail on invalid syntax")
		}
		if !strings.Contains(err.Error(), "<input>") {
			t.Errorf("error should use the default file name, got: %v", err)
		}
	})

	t.Run("unknown definition is an internal error", func(t *testing.T) {
		t.Parallel()

		_, err := Decode[testFile]([]byte(testSchema), []byte(`entries: []`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Errorf("Decode() error = %v, want internal error", err)
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		_, err := Decode[testFile]([]byte(testSchema), []byte(`entries: []`), "#File", WithMaxSize(4))
		if !errors.Is(err, ErrTooLarge) {
			t.Errorf("Decode() error = %v, want ErrTooLarge", err)
		}
	})
}

func TestDecodeMap(t *testing.T) {
	t.Parallel()

	data := []byte(`name: "partial"`)
	m, err := DecodeMap([]byte(testSchema), data, "#File")
	if err != nil {
		t.Fatalf("DecodeMap() error = %v", err)
	}
	if m["name"] != "partial" {
		t.Errorf("m[name] = %v, want partial", m["name"])
	}

	if _, err := DecodeMap([]byte(testSchema), []byte(`name: 3`), "#File"); err == nil {
		t.Error("DecodeMap() should reject a mistyped field")
	}
}
