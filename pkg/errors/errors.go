package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures theme document validation issues.
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

// ConfigurationError reports a palette graph that was built incorrectly: a
// storage without a terminating redirect, an incomplete base palette, or an
// access to a state or attribute the feature never declared.
type ConfigurationError struct {
	Subject string
	Message string
	Err     error
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(subject, message string, err error) error {
	return &ConfigurationError{Subject: subject, Message: message, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Subject != "" {
		return fmt.Sprintf("configuration error [%s]: %s", e.Subject, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DanglingRedirectError is returned when resolution reaches a redirector
// whose target has been cleared.
type DanglingRedirectError struct {
	Redirector string
	Attribute  string
	State      string
}

// NewDanglingRedirectError constructs a DanglingRedirectError.
func NewDanglingRedirectError(redirector, attribute, state string) error {
	return &DanglingRedirectError{Redirector: redirector, Attribute: attribute, State: state}
}

func (e *DanglingRedirectError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("dangling redirect: %s has no target while resolving %s in state %s", e.Redirector, e.Attribute, e.State)
}

// CyclicRedirectionError is returned when resolution revisits a source it has
// already walked through during the same call.
type CyclicRedirectionError struct {
	Path      []string
	Attribute string
	State     string
}

// NewCyclicRedirectionError constructs a CyclicRedirectionError. The path is
// copied so callers may keep mutating their own slice.
func NewCyclicRedirectionError(path []string, attribute, state string) error {
	return &CyclicRedirectionError{Path: append([]string(nil), path...), Attribute: attribute, State: state}
}

func (e *CyclicRedirectionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("redirection cycle while resolving %s in state %s: %s", e.Attribute, e.State, strings.Join(e.Path, " -> "))
}
