package errors

import (
	"fmt"
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

// ValidationError captures configuration validation issues.
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

// InvokeError describes a single failed member invocation. Callers treat
// every invocation failure as ordinary absence when cascading over
// candidates; the error exists only to carry diagnostic detail to
// debug-level logs.
type InvokeError struct {
	Member  string
	Message string
	Err     error
}

// NewInvokeError constructs an InvokeError for the named member.
func NewInvokeError(member string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &InvokeError{Member: member, Message: message, Err: err}
}

func (e *InvokeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Member != "" {
		return fmt.Sprintf("invoke error [%s]: %s", e.Member, e.Message)
	}
	return fmt.Sprintf("invoke error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *InvokeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistryError indicates issues registering or looking up named host types.
type RegistryError struct {
	Name    string
	Message string
	Err     error
}

// NewRegistryError constructs a RegistryError for the given type name.
func NewRegistryError(name string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{Name: name, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name != "" {
		return fmt.Sprintf("registry error [%s]: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
