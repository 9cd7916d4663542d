// Package errors provides structured error types and exit codes for buildreport.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (write failed, etc.)
	ExitConfigError  = 2 // Configuration error (invalid config, invalid report file, etc.)
	ExitInputError   = 3 // Invalid argument passed by the caller
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return "runtime"
	}
}

// Error is the base error type for buildreport.
type Error struct {
	Kind    ErrorKind
	Message string
	Field   string // Offending field or argument name if applicable
	Cause   error  // Underlying error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *Error) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindInvalidArgument:
		return ExitInputError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// Validation creates a new validation error.
func Validation(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

// Validationf creates a new validation error with formatting.
func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// InvalidArgument reports a required argument that was nil or unset.
func InvalidArgument(name string) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Field:   name,
		Message: "must not be nil",
	}
}

// InvalidArgumentWrap reports an argument rejected for the reason in cause.
func InvalidArgumentWrap(name string, cause error) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Field:   name,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// InvalidArgumentf reports an argument with an unacceptable value.
func InvalidArgumentf(name, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Field:   name,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// IsKind reports whether err, or any error it wraps, is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitRuntimeError
}
