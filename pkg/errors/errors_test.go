package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidID, "invalid identifier: %q", "a b")

	if err.Code != ErrCodeInvalidID {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidID)
	}

	if err.Message != `invalid identifier: "a b"` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `INVALID_ID: invalid identifier: "a b"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeWriteFailed, cause, "write edge statement")

	if err.Code != ErrCodeWriteFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeWriteFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// errors.Is must reach the original cause through the wrapper.
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidGraph, "duplicate node id")

	if !Is(err, ErrCodeInvalidGraph) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeInvalidID) {
		t.Error("Is() should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeInvalidGraph) {
		t.Error("Is() should not match a plain error")
	}

	// Wrapped in a plain fmt error, the code must still be found.
	wrapped := fmt.Errorf("load graph: %w", err)
	if !Is(wrapped, ErrCodeInvalidGraph) {
		t.Error("Is() should unwrap fmt-wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeFileNotFound, "missing")); got != ErrCodeFileNotFound {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeFileNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidID, "empty identifier")
	if got := UserMessage(err); got != "empty identifier" {
		t.Errorf("UserMessage() = %v", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %v", got)
	}
}
