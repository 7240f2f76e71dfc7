// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "commands.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filename", func(t *testing.T) {
		t.Parallel()

		orig := errors.New("boom")
		err := FormatError(orig, "commands.cue")
		if !errors.Is(err, orig) {
			t.Errorf("FormatError should wrap the original error, got %v", err)
		}
		if !strings.HasPrefix(err.Error(), "commands.cue: ") {
			t.Errorf("error should start with the file name, got %v", err)
		}
	})
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	one := &ValidationError{Filename: "config.cue", Problems: []Problem{{Path: "ui.color_scheme", Message: "conflicting values"}}}
	if got, want := one.Error(), "config.cue: ui.color_scheme: conflicting values"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	many := &ValidationError{Filename: "commands.cue", Problems: []Problem{
		{Path: "commands[0].id", Message: "empty"},
		{Message: "expected '}'"},
	}}
	want := "commands.cue: validation failed:\n  commands[0].id: empty\n  expected '}'"
	if got := many.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(many, ErrValidation) {
		t.Error("ValidationError should wrap ErrValidation")
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"commands"}, "commands"},
		{"index", []string{"commands", "3", "spec"}, "commands[3].spec"},
		{"nested index", []string{"a", "0", "1", "b"}, "a[0][1].b"},
		{"leading number is not an index", []string{"0", "x"}, "0.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckSize(t *testing.T) {
	t.Parallel()

	if err := CheckSize([]byte("abc"), 3, "f"); err != nil {
		t.Errorf("CheckSize at limit = %v, want nil", err)
	}

	err := CheckSize([]byte("abcd"), 3, "f")
	var tooLarge *TooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("CheckSize over limit = %v, want *TooLargeError", err)
	}
	if tooLarge.Size != 4 || tooLarge.Max != 3 {
		t.Errorf("TooLargeError = %+v", tooLarge)
	}
}
