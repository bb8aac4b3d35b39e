package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "logging.level")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateExample()...)

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Name == "" {
		errors = append(errors, ValidationError{
			Field:   "logging.name",
			Value:   c.Logging.Name,
			Message: "logger name must not be empty",
		})
	}

	level := strings.ToUpper(c.Logging.Level)
	if level == "WARN" {
		level = "WARNING"
	}
	if !slices.Contains(ValidLogLevels(), level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.Directory == "" {
		errors = append(errors, ValidationError{
			Field:   "logging.directory",
			Value:   c.Logging.Directory,
			Message: "log directory must not be empty",
		})
	}

	return errors
}

func (c *Config) validateExample() []ValidationError {
	var errors []ValidationError

	if c.Example.SomeNumber < 0 {
		errors = append(errors, ValidationError{
			Field:   "example.some_number",
			Value:   c.Example.SomeNumber,
			Message: "must not be negative",
		})
	}

	return errors
}
