package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a theme file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StyleOptionError indicates a style setting key that could not be routed to
// any known (role, attribute) pair, or an invalid value for one that could.
// It is raised at construction time and is fatal to that construction call.
type StyleOptionError struct {
	Style  string
	Option string
	Reason string
}

// NewStyleOptionError constructs a StyleOptionError.
func NewStyleOptionError(style, option, reason string) error {
	return &StyleOptionError{Style: style, Option: option, Reason: reason}
}

func (e *StyleOptionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Style != "" {
		return fmt.Sprintf("invalid style option %q for style %q: %s", e.Option, e.Style, e.Reason)
	}
	return fmt.Sprintf("invalid style option %q: %s", e.Option, e.Reason)
}

// UnknownStyleError indicates a registry lookup for a name that was never registered.
type UnknownStyleError struct {
	Name string
}

// NewUnknownStyleError constructs an UnknownStyleError.
func NewUnknownStyleError(name string) error {
	return &UnknownStyleError{Name: name}
}

func (e *UnknownStyleError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown style: %q", e.Name)
}

// CycleError indicates a style parent chain that revisits one of its members.
type CycleError struct {
	Chain []string
}

// NewCycleError constructs a CycleError from the offending chain.
func NewCycleError(chain []string) error {
	return &CycleError{Chain: chain}
}

func (e *CycleError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("style parent cycle: %s", strings.Join(e.Chain, " -> "))
}

// DuplicateElementError indicates that two elements were registered under the
// same lookup key within one container. It carries both registrants so the
// application author can identify the conflicting declarations.
type DuplicateElementError struct {
	Key string
	Old any
	New any
}

// NewDuplicateElementError constructs a DuplicateElementError.
func NewDuplicateElementError(key string, old, new any) error {
	return &DuplicateElementError{Key: key, Old: old, New: new}
}

func (e *DuplicateElementError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("duplicate element key %q: already registered by %v, re-registered by %v", e.Key, e.Old, e.New)
}

// ValidationError captures theme file validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TeardownError wraps a failure from acting on a widget handle that no longer
// exists. It is logged at the point of the native call and never propagated.
type TeardownError struct {
	Op  string
	Err error
}

// NewTeardownError constructs a TeardownError.
func NewTeardownError(op string, err error) error {
	return &TeardownError{Op: op, Err: err}
}

func (e *TeardownError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("teardown: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *TeardownError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
