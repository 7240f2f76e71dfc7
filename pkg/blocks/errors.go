// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSpec is the sentinel error wrapped by MissingSpecError.
	ErrMissingSpec = errors.New("missing spec")
	// ErrMissingID is the sentinel error wrapped by MissingIDError.
	ErrMissingID = errors.New("missing ID")
	// ErrDuplicateID is the sentinel error wrapped by DuplicateIDError.
	ErrDuplicateID = errors.New("duplicate ID")
	// ErrUnknownID is the sentinel error wrapped by UnknownIDError.
	ErrUnknownID = errors.New("unknown ID")
)

type (
	// MissingSpecError is returned by Build when a declaration has no spec.
	MissingSpecError struct {
		ID ID
	}

	// MissingIDError is returned by Build when a declaration has neither an
	// ID nor a selector to synthesize one from.
	MissingIDError struct {
		Spec string
		// Index is the position of the declaration in the command table.
		Index int
	}

	// DuplicateIDError is returned by Build when two declarations share an ID.
	DuplicateIDError struct {
		ID ID
		// First and Second are the positions of the clashing declarations.
		First  int
		Second int
	}

	// UnknownIDError is returned by Build when a rule, alias or translation
	// refers to an ID that no declaration defines.
	UnknownIDError struct {
		ID ID
		// Source names what referred to the ID ("rule", "alias in de", ...).
		Source string
	}
)

// Error implements the error interface.
func (e *MissingSpecError) Error() string {
	return fmt.Sprintf("missing spec: %s", e.ID)
}

// Unwrap returns ErrMissingSpec so callers can use errors.Is for programmatic detection.
func (e *MissingSpecError) Unwrap() error { return ErrMissingSpec }

// Error implements the error interface.
func (e *MissingIDError) Error() string {
	return fmt.Sprintf("missing ID: command %d (%q) has neither id nor selector", e.Index, e.Spec)
}

// Unwrap returns ErrMissingID so callers can use errors.Is for programmatic detection.
func (e *MissingIDError) Unwrap() error { return ErrMissingID }

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate ID: %s (commands %d and %d)", e.ID, e.First, e.Second)
}

// Unwrap returns ErrDuplicateID so callers can use errors.Is for programmatic detection.
func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// Error implements the error interface.
func (e *UnknownIDError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("unknown ID: %s (referenced by %s)", e.ID, e.Source)
	}
	return fmt.Sprintf("unknown ID: %s", e.ID)
}

// Unwrap returns ErrUnknownID so callers can use errors.Is for programmatic detection.
func (e *UnknownIDError) Unwrap() error { return ErrUnknownID }
