// ABOUTME: Custom error types for the rendering core
// ABOUTME: Distinguishes validation, configuration and document-format failures

package errors

import (
	"errors"
	"fmt"
)

// ValidationError reports a required or invalid field discovered at render
// time. Validation is deliberately lazy: setters accept anything, render
// surfaces the first problem it finds.
type ValidationError struct {
	// Element names the offending element type, pluralized the way the
	// messages read ("ads", "articles", "captions").
	Element string

	// Field is the missing or invalid field.
	Field string

	// Message overrides the default "<field> is required for all <element>"
	// text when the failure is not a plain missing field.
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required for all %s", e.Field, e.Element)
}

// NewRequired builds a ValidationError for a missing required field.
func NewRequired(element, field string) *ValidationError {
	return &ValidationError{Element: element, Field: field}
}

// NewInvalid builds a ValidationError with an explicit message.
func NewInvalid(element, field, message string) *ValidationError {
	return &ValidationError{Element: element, Field: field, Message: message}
}

// ConfigurationError reports a request the element model cannot satisfy: an
// unknown element kind asked of the factory, or an enum value with no valid
// mapping on a field that does not silently discard.
type ConfigurationError struct {
	Element string
	Option  string
	Value   string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("invalid article element: %s does not exist", e.Value)
	}
	return fmt.Sprintf("invalid %s %q for %s", e.Option, e.Value, e.Element)
}

// NewUnknownElement builds a ConfigurationError for an unknown factory kind.
func NewUnknownElement(kind string) *ConfigurationError {
	return &ConfigurationError{Value: kind}
}

// NewInvalidOption builds a ConfigurationError for an enum value with no
// valid mapping.
func NewInvalidOption(element, option, value string) *ConfigurationError {
	return &ConfigurationError{Element: element, Option: option, Value: value}
}

// FormatError reports a document-level problem, such as missing channel
// metadata or an unusable writer.
type FormatError struct {
	Message string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return e.Message
}

// NewFormat builds a FormatError with the given message.
func NewFormat(message string) *FormatError {
	return &FormatError{Message: message}
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configurationErr *ConfigurationError
	return errors.As(err, &configurationErr)
}

// IsFormat checks if an error is a FormatError
func IsFormat(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
