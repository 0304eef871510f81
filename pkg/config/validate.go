package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("config validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate inspects the configuration for missing or invalid fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	errors := validateLogging(&cfg.Logging)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func validateLogging(logging *LoggingConfig) ValidationErrors {
	var errors ValidationErrors

	if !slices.Contains(validLogLevels, logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		})
	}

	if !slices.Contains(validLogFormats, logging.Format) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogFormats, ", ")),
		})
	}

	if logging.Verbose && logging.Quiet {
		errors = append(errors, ValidationError{
			Field:   "logging",
			Message: "verbose and quiet cannot both be enabled",
		})
	}

	return errors
}
