// Package errors provides centralized error definitions and error handling
// utilities for the leango codebase. It defines domain-specific errors,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Two domain-specific error types exist:
//   - ConfigurationError: invalid configuration values (log level, config
//     file contents). Always fatal; surfaced before any logging happens.
//   - ResourceError: failures touching external resources (log directory
//     creation, log file opening). Fatal for file-based logging.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewConfigurationError("unknown log level", errors.ErrInvalidLogLevel).WithKey("logging.level")
//	err := errors.NewResourceError("failed to open log file", baseErr).WithPath("/var/log/leango")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInvalidLogLevel) { ... }
//
//	var cfgErr *errors.ConfigurationError
//	if errors.As(err, &cfgErr) { ... }
//
//	if errors.IsFatal(err) { ... }
//
// Error types additionally expose a Doc method with a short, stable
// description of the error class. The logging package's exception
// formatter includes this description in its diagnostic output.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Configuration-related sentinel errors
var (
	// ErrInvalidLogLevel indicates that a log level string could not be parsed.
	ErrInvalidLogLevel = New("invalid log level")
	// ErrLoggerConstructed indicates that an operation requires the shared
	// logger to not yet exist, but it has already been constructed.
	ErrLoggerConstructed = New("logger already constructed")
)

// Resource-related sentinel errors
var (
	// ErrLogDirUnavailable indicates that the log directory could not be created.
	ErrLogDirUnavailable = New("log directory unavailable")
	// ErrLogFileUnavailable indicates that the log file could not be opened.
	ErrLogFileUnavailable = New("log file unavailable")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message string
	cause   error
	fatal   bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsFatal returns whether the error should terminate startup.
func (e *baseError) IsFatal() bool {
	return e.fatal
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// ConfigurationError represents an invalid configuration value detected at
// construction time, before any logger handler has been attached.
//
// Example:
//
//	err := errors.NewConfigurationError("unknown log level", errors.ErrInvalidLogLevel)
//	err = err.WithKey("logging.level").WithValue("LOUD")
//	fmt.Println(err) // "configuration error [key=logging.level, value=LOUD]: unknown log level: invalid log level"
type ConfigurationError struct {
	baseError
	Key   string
	Value string
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			message: message,
			cause:   cause,
			fatal:   true,
		},
	}
}

// WithKey adds the offending config key to the error context.
func (e *ConfigurationError) WithKey(key string) *ConfigurationError {
	e.Key = key
	return e
}

// WithValue adds the offending value to the error context.
func (e *ConfigurationError) WithValue(value string) *ConfigurationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ConfigurationError) Error() string {
	var parts []string
	if e.Key != "" {
		parts = append(parts, fmt.Sprintf("key=%s", e.Key))
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("value=%s", e.Value))
	}

	prefix := "configuration error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("configuration error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigurationError) Is(target error) bool {
	if _, ok := target.(*ConfigurationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// Doc returns a short description of this error class.
func (e *ConfigurationError) Doc() string {
	return "A configuration value was rejected before the logger was constructed."
}

// ResourceError represents a failure to acquire an external resource such
// as the log directory or log file.
//
// Example:
//
//	err := errors.NewResourceError("failed to create log directory", baseErr)
//	err = err.WithPath("/var/log/leango")
type ResourceError struct {
	baseError
	Path string
}

// NewResourceError creates a new ResourceError.
func NewResourceError(message string, cause error) *ResourceError {
	return &ResourceError{
		baseError: baseError{
			message: message,
			cause:   cause,
			fatal:   true,
		},
	}
}

// WithPath adds the affected filesystem path to the error context.
func (e *ResourceError) WithPath(path string) *ResourceError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *ResourceError) Error() string {
	prefix := "resource error"
	if e.Path != "" {
		prefix = fmt.Sprintf("resource error [path=%s]", e.Path)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ResourceError) Is(target error) bool {
	if _, ok := target.(*ResourceError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// Doc returns a short description of this error class.
func (e *ResourceError) Doc() string {
	return "An external resource required for logging could not be acquired."
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// fatalError is implemented by errors that should terminate startup.
type fatalError interface {
	IsFatal() bool
}

// IsFatal returns true if the error (or any error in its chain) indicates
// that process startup should abort with a one-line description.
func IsFatal(err error) bool {
	for err != nil {
		if fe, ok := err.(fatalError); ok {
			return fe.IsFatal()
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsDomainError returns true if the error is one of the leango error types.
func IsDomainError(err error) bool {
	var cfgErr *ConfigurationError
	var resErr *ResourceError
	return errors.As(err, &cfgErr) || errors.As(err, &resErr)
}
