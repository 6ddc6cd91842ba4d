package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_RequiredMessage(t *testing.T) {
	err := NewRequired("ads", "source")

	expected := "source is required for all ads"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_ExplicitMessage(t *testing.T) {
	err := NewInvalid("audio", "source", "source (foo) must be a valid URL for all audio")

	expected := "source (foo) must be a valid URL for all audio"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestConfigurationError_UnknownElement(t *testing.T) {
	err := NewUnknownElement("carousel")

	expected := "invalid article element: carousel does not exist"
	if err.Error() != expected {
		t.Errorf("ConfigurationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestConfigurationError_InvalidOption(t *testing.T) {
	err := NewInvalidOption("audio", "play mode", "backwards")

	expected := `invalid play mode "backwards" for audio`
	if err.Error() != expected {
		t.Errorf("ConfigurationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFormatError_Message(t *testing.T) {
	err := NewFormat("required channel parameter missing: title, description or link")

	expected := "required channel parameter missing: title, description or link"
	if err.Error() != expected {
		t.Errorf("FormatError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsValidation_True(t *testing.T) {
	if !IsValidation(NewRequired("articles", "title")) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsValidation_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("failed to render item: %w", NewRequired("articles", "link"))

	if !IsValidation(wrapped) {
		t.Error("IsValidation should return true for wrapped ValidationError")
	}
}

func TestIsConfiguration_True(t *testing.T) {
	if !IsConfiguration(NewUnknownElement("slideshow")) {
		t.Error("IsConfiguration should return true for ConfigurationError")
	}
}

func TestIsConfiguration_False(t *testing.T) {
	if IsConfiguration(NewRequired("ads", "source")) {
		t.Error("IsConfiguration should return false for ValidationError")
	}
}

func TestIsFormat_True(t *testing.T) {
	if !IsFormat(NewFormat("missing channel")) {
		t.Error("IsFormat should return true for FormatError")
	}
}

func TestWrapError_NilError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError should return nil for nil error")
	}
}

func TestWrapError_AddsContext(t *testing.T) {
	err := WrapError(errors.New("boom"), "rendering feed")

	expected := "rendering feed: boom"
	if err.Error() != expected {
		t.Errorf("WrapError error = %v, want %v", err.Error(), expected)
	}
}
