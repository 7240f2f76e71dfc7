// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

var (
	// ErrTooLarge is returned when a document exceeds the configured size limit.
	ErrTooLarge = errors.New("document too large")
	// ErrValidation is the sentinel error wrapped by ValidationError.
	ErrValidation = errors.New("schema validation failed")
)

type (
	// Problem is one schema violation. Path uses JSON notation
	// ("commands[3].spec") and is empty for document-level errors.
	Problem struct {
		Path    string
		Message string
	}

	// ValidationError lists every problem CUE reported for one document.
	// It wraps ErrValidation for errors.Is() compatibility.
	ValidationError struct {
		Filename string
		Problems []Problem
	}

	// TooLargeError reports a document over the size limit.
	// It wraps ErrTooLarge for errors.Is() compatibility.
	TooLargeError struct {
		Filename string
		Size     int64
		Max      int64
	}
)

// Error implements the error interface.
func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s: size %d bytes exceeds maximum %d bytes", e.Filename, e.Size, e.Max)
}

// Unwrap returns ErrTooLarge.
func (e *TooLargeError) Unwrap() error { return ErrTooLarge }

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// Error implements the error interface. A single problem stays on one line.
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return e.Filename + ": " + e.Problems[0].String()
	}
	var b strings.Builder
	b.WriteString(e.Filename)
	b.WriteString(": validation failed:")
	for _, p := range e.Problems {
		b.WriteString("\n  ")
		b.WriteString(p.String())
	}
	return b.String()
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// FormatError converts a CUE error into a *ValidationError with one
// Problem per CUE error. Non-CUE errors are prefixed with the file name.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	all := cueerrors.Errors(err)
	if len(all) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	verr := &ValidationError{Filename: filename, Problems: make([]Problem, 0, len(all))}
	for _, e := range all {
		path := formatPath(cueerrors.Path(e))
		msg := e.Error()
		// CUE often repeats the path at the start of the message.
		if path != "" && strings.HasPrefix(msg, path) {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
		}
		verr.Problems = append(verr.Problems, Problem{Path: path, Message: msg})
	}
	return verr
}

// formatPath turns ["commands", "3", "spec"] into "commands[3].spec".
func formatPath(path []string) string {
	var sb strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckSize returns a *TooLargeError when data is longer than maxSize.
func CheckSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return &TooLargeError{Filename: filename, Size: int64(len(data)), Max: maxSize}
	}
	return nil
}
