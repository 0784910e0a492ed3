// SPDX-License-Identifier: MPL-2.0

// Package issue carries user-facing errors for content loading.
//
// An ActionableError pairs what failed (operation, resource) with what the
// player can do about it (suggestions). The load phases return these instead
// of rendering dialogs themselves, so the same error can drive a terminal
// dialog, a headless log line, or a nonzero exit.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is an error with enough context for a user-facing
// remediation message.
type ActionableError struct {
	// Operation describes what was being attempted
	// (e.g. "load expansion archives").
	Operation string

	// Resource identifies the file or logical pack involved (optional).
	Resource string

	// Suggestions lists remediation hints shown to the user (optional).
	Suggestions []string

	// Cause is the underlying error (optional).
	Cause error
}

// ErrorContext is a fluent builder for ActionableError:
//
//	return issue.NewErrorContext().
//		WithOperation("load expansion archives").
//		WithResource("hfvoice.mpq").
//		WithSuggestion("Copy all the hf*.mpq files next to the game binary").
//		Wrap(err).
//		BuildError()
type ErrorContext struct {
	operation   string
	resource    string
	suggestions []string
	cause       error
}

// NewErrorContext returns an empty builder.
func NewErrorContext() *ErrorContext { return &ErrorContext{} }

// WithOperation sets the operation description.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the resource identifier.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends a remediation hint.
func (c *ErrorContext) WithSuggestion(s string) *ErrorContext {
	c.suggestions = append(c.suggestions, s)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build returns the accumulated ActionableError.
func (c *ErrorContext) Build() *ActionableError {
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// BuildError returns the accumulated error as a plain error value.
func (c *ErrorContext) BuildError() error { return c.Build() }

// Error implements the error interface with a concise one-line message.
func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the cause for errors.Is/As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the error for display. Suggestions are listed as bullets;
// verbose mode appends the full error chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	for _, suggestion := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(suggestion)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}
	return msg.String()
}
