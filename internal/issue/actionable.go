// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is a user-facing failure: the step that failed, the
	// file or block it failed on, hints for fixing it and, optionally, a
	// catalogue issue with the long explanation.
	//
	//	return issue.NewErrorContext().
	//		WithOperation("load language pack").
	//		WithResource("./sv.toml").
	//		WithSuggestion("Run 'blockresolve languages' to list the embedded packs").
	//		WithIssue(issue.LanguagePackInvalidId).
	//		Wrap(err).
	//		BuildError()
	ActionableError struct {
		Operation   string
		Resource    string
		Suggestions []string
		Cause       error
		// IssueID is zero when no catalogue entry applies.
		IssueID Id
	}

	// ErrorContext accumulates the parts of an ActionableError.
	ErrorContext struct {
		err ActionableError
	}
)

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// As finds the first ActionableError in err's chain.
func As(err error) (*ActionableError, bool) {
	var ae *ActionableError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Describe returns the text shown to the user for err: Format for an
// ActionableError, the plain message otherwise.
func Describe(err error, verbose bool) string {
	if ae, ok := As(err); ok {
		return ae.Format(verbose)
	}
	return err.Error()
}

// Error implements the error interface as "failed to <op>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := make([]string, 0, 3)
	parts = append(parts, "failed to "+e.Operation)
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the message followed by one "hint:" line per suggestion.
// Verbose output also lists every error in the cause chain and the linked
// catalogue issue number.
func (e *ActionableError) Format(verbose bool) string {
	var b strings.Builder
	b.WriteString(e.Error())

	for _, s := range e.Suggestions {
		b.WriteString("\n  hint: ")
		b.WriteString(s)
	}

	if !verbose {
		return b.String()
	}

	if e.Cause != nil {
		b.WriteString("\n\ncaused by:")
		for depth, err := 1, e.Cause; err != nil; depth, err = depth+1, errors.Unwrap(err) {
			fmt.Fprintf(&b, "\n  %d. %s", depth, err)
		}
	}
	if e.IssueID != 0 {
		fmt.Fprintf(&b, "\n\nissue #%d", e.IssueID)
	}
	return b.String()
}

// Issue returns the linked catalogue issue, or nil.
func (e *ActionableError) Issue() *Issue {
	if e.IssueID == 0 {
		return nil
	}
	return Get(e.IssueID)
}

// HasSuggestions reports whether any hint is attached.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// WithOperation sets the failed step, phrased as a verb ("resolve block").
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.err.Operation = op
	return c
}

// WithResource names the file, pack or block involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.err.Resource = res
	return c
}

// WithSuggestion appends a hint. Blank hints are ignored.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	return c.WithSuggestions(sug)
}

// WithSuggestions appends several hints. Blank hints are ignored.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	for _, s := range sugs {
		if strings.TrimSpace(s) != "" {
			c.err.Suggestions = append(c.err.Suggestions, s)
		}
	}
	return c
}

// WithIssue links a catalogue issue.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.err.IssueID = id
	return c
}

// Wrap sets the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.err.Cause = err
	return c
}

// Build returns a copy of the accumulated error, or nil when no operation
// was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.err.Operation == "" {
		return nil
	}
	ae := c.err
	ae.Suggestions = append([]string(nil), c.err.Suggestions...)
	return &ae
}

// BuildError is Build typed as error, so that a missing operation yields an
// untyped nil rather than a nil *ActionableError.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
