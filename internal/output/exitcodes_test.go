package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{"user error", NewUserError("List not found"), ExitUserError, "List not found"},
		{"system error", NewSystemError("failed to save lists"), ExitSystemError, "failed to save lists"},
		{"conflict error", NewConflictError("post already exists"), ExitConflict, "post already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	sentinel := errors.New("list not found")

	userErr := NewUserErrorWithCause("List not found", fmt.Errorf("%w: %q", sentinel, "ideas"))
	if !errors.Is(userErr, sentinel) {
		t.Error("errors.Is should find the wrapped domain error")
	}
	if userErr.Code != ExitUserError {
		t.Errorf("Code = %d, want %d", userErr.Code, ExitUserError)
	}

	underlying := errors.New("disk full")
	sysErr := NewSystemErrorWithCause("failed to save lists", underlying)
	if !errors.Is(sysErr, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"user", NewUserError("bad input"), ExitUserError},
		{"system", NewSystemError("io failed"), ExitSystemError},
		{"conflict", NewConflictError("duplicate"), ExitConflict},
		{"wrapped system", fmt.Errorf("outer: %w", NewSystemError("io")), ExitSystemError},
		{"regular error defaults to user error", errors.New("some error"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestIsReported(t *testing.T) {
	if !IsReported(NewUserError("x")) {
		t.Error("ExitError should count as reported")
	}
	if IsReported(errors.New("unknown flag")) {
		t.Error("plain errors are not reported by commands")
	}
}
