package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidWeek, "week %d out of range", 54)

	if err.Code != ErrCodeInvalidWeek {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidWeek)
	}

	if err.Message != "week 54 out of range" {
		t.Errorf("Message = %v, want %v", err.Message, "week 54 out of range")
	}

	expected := "INVALID_WEEK: week 54 out of range"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("rsvg-convert missing")
	err := Wrap(ErrCodeRenderFailed, cause, "render pdf")

	if err.Code != ErrCodeRenderFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRenderFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "RENDER_FAILED: render pdf: rsvg-convert missing"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDegenerateGeometry, "test"),
			code:     ErrCodeDegenerateGeometry,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDegenerateGeometry, "test"),
			code:     ErrCodeLabelCountMismatch,
			expected: false,
		},
		{
			name:     "wrapped error reports outer code",
			err:      Wrap(ErrCodeRenderFailed, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeRenderFailed,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmtWrap(New(ErrCodeInvalidWeek, "inner")),
			code:     ErrCodeInvalidWeek,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeLabelCountMismatch, "test"), ErrCodeLabelCountMismatch},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidWeek,
		ErrCodeInvalidYear,
		ErrCodeInvalidFormat,
		ErrCodeInvalidMode,
		ErrCodeInvalidKind,
		ErrCodeInvalidConfig,
		ErrCodeInvalidPath,
		ErrCodeDegenerateGeometry,
		ErrCodeLabelCountMismatch,
		ErrCodeRenderFailed,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

type wrapped struct{ err error }

func (w wrapped) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapped) Unwrap() error { return w.err }

func fmtWrap(err error) error { return wrapped{err} }
