package errors

import (
	"errors"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrTimeout", ErrTimeout, "operation timed out"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
		{"ErrNotFound", ErrNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTemporary(t *testing.T) {
	if !IsTemporary(ErrTimeout) {
		t.Error("ErrTimeout should be temporary")
	}
	if IsTemporary(ErrClosed) {
		t.Error("ErrClosed should not be temporary")
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "taskqueue",
				Field:  "workers",
				Value:  -1,
				Reason: "must be non-negative",
			},
			want: "taskqueue: invalid workers=-1 (must be non-negative)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "feeder",
				Field:  "schedule",
				Value:  "bogus",
				Reason: "not a cron expression",
				Hint:   "use a standard cron spec or a @descriptor",
			},
			want: "feeder: invalid schedule=bogus (not a cron expression) - use a standard cron spec or a @descriptor",
		},
		{
			name: "empty string value",
			err: &ValidationError{
				Module: "feeder",
				Field:  "schedule",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "feeder: invalid schedule= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("test", "field", 0, "test")

	if verr.Unwrap() != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", verr.Unwrap())
	}

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("module", "field", 123, "test reason")

	if err.Module != "module" {
		t.Errorf("Module = %q, want %q", err.Module, "module")
	}
	if err.Field != "field" {
		t.Errorf("Field = %q, want %q", err.Field, "field")
	}
	if err.Value != 123 {
		t.Errorf("Value = %v, want %v", err.Value, 123)
	}
	if err.Reason != "test reason" {
		t.Errorf("Reason = %q, want %q", err.Reason, "test reason")
	}
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}

	withHint := err.WithHint("try again")
	if withHint.Hint != "try again" {
		t.Errorf("Hint = %q, want %q", withHint.Hint, "try again")
	}
}
