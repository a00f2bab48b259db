package models

import (
	"errors"
	"fmt"
)

// ErrorType classifies implementation failures. Every error raised by the
// pipeline is terminal for the current request; callers treat them as
// non-retryable.
type ErrorType int

const (
	// ErrorTypeUnsupportedToken marks a type that can never be implemented:
	// a primitive, an array, the enumeration root, or a final or private type.
	ErrorTypeUnsupportedToken ErrorType = iota

	// ErrorTypeInaccessibleAncestor marks a private class somewhere in the
	// superclass chain, making extension impossible.
	ErrorTypeInaccessibleAncestor

	// ErrorTypeNoAccessibleConstructor marks a class whose declared
	// constructors are all private.
	ErrorTypeNoAccessibleConstructor

	// ErrorTypeCompilationFailed marks a non-zero result from the external
	// compiler.
	ErrorTypeCompilationFailed

	// ErrorTypeIOFailure marks a failed path resolution, directory creation
	// or file write.
	ErrorTypeIOFailure

	// ErrorTypeDescriptorSyntax marks a malformed descriptor stub file.
	ErrorTypeDescriptorSyntax

	// ErrorTypeUnknownType marks a type name that could not be resolved
	// against the loaded descriptors.
	ErrorTypeUnknownType
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeUnsupportedToken:
		return "UnsupportedToken"
	case ErrorTypeInaccessibleAncestor:
		return "InaccessibleAncestor"
	case ErrorTypeNoAccessibleConstructor:
		return "NoAccessibleConstructor"
	case ErrorTypeCompilationFailed:
		return "CompilationFailed"
	case ErrorTypeIOFailure:
		return "IOFailure"
	case ErrorTypeDescriptorSyntax:
		return "DescriptorSyntax"
	case ErrorTypeUnknownType:
		return "UnknownType"
	default:
		return "UnknownError"
	}
}

// ImplError represents a failure while implementing a type token.
type ImplError struct {
	Type        ErrorType              // classification of the failure
	Token       string                 // canonical name of the requested type, if known
	Message     string                 // human-readable message
	Cause       error                  // underlying error cause
	Suggestions []string               // hints for fixing the problem
	Context     map[string]interface{} // additional context for diagnostics
}

// Error implements the error interface.
func (e *ImplError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Token, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *ImplError) Unwrap() error {
	return e.Cause
}

// NewImplError creates an ImplError with the given classification.
func NewImplError(errType ErrorType, token, format string, args ...interface{}) *ImplError {
	return &ImplError{
		Type:    errType,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsErrorType reports whether err (or anything it wraps) is an ImplError with
// the given classification.
func IsErrorType(err error, errType ErrorType) bool {
	var implErr *ImplError
	if errors.As(err, &implErr) {
		return implErr.Type == errType
	}
	return false
}
