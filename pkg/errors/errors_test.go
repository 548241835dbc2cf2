package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrNotFound, "entry missing")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %s, want %s", err.Code, ErrNotFound)
	}

	want := "[NOT_FOUND] entry missing"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrAlreadyExists, "type %q is already registered", "Measure")

	want := `[ALREADY_EXISTS] type "Measure" is already registered`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		cause := fmt.Errorf("module load failed")
		err := Wrap(cause, ErrResolution, "resolving Score")

		if !errors.Is(err, cause) {
			t.Error("wrapped error should match errors.Is on the cause")
		}

		if errors.Unwrap(err) != cause {
			t.Error("Unwrap() should return the cause")
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if Wrap(nil, ErrResolution, "no-op") != nil {
			t.Error("Wrap(nil, ...) should return nil")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrInvalidResolver, "nil resolver for %q", "Voice")

	if !IsErrorCode(err, ErrInvalidResolver) {
		t.Error("IsErrorCode should match the error's code")
	}

	if IsErrorCode(err, ErrNotFound) {
		t.Error("IsErrorCode should not match a different code")
	}

	if IsErrorCode(nil, ErrNotFound) {
		t.Error("IsErrorCode(nil, ...) should be false")
	}
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := New(ErrResolution, "loader failed")
	outer := fmt.Errorf("factory: %w", inner)

	if !IsErrorCode(outer, ErrResolution) {
		t.Error("IsErrorCode should see through fmt.Errorf wrapping")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"notat error", New(ErrConfigLoad, "bad file"), ErrConfigLoad},
		{"plain error", fmt.Errorf("plain"), ErrUnknown},
		{"wrapped notat error", fmt.Errorf("outer: %w", New(ErrTypeInvalid, "x")), ErrTypeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrResolution, "loader failed").
		WithDetail("name", "Opus").
		WithDetail("attempt", 2)

	details := GetErrorDetails(err)
	if details["name"] != "Opus" {
		t.Errorf("details[name] = %v, want Opus", details["name"])
	}
	if details["attempt"] != 2 {
		t.Errorf("details[attempt] = %v, want 2", details["attempt"])
	}
}

func TestErrorsIsByCode(t *testing.T) {
	a := New(ErrNotFound, "first")
	b := New(ErrNotFound, "second")

	if !errors.Is(a, b) {
		t.Error("two errors with the same code should satisfy errors.Is")
	}

	c := New(ErrAlreadyExists, "third")
	if errors.Is(a, c) {
		t.Error("errors with different codes should not satisfy errors.Is")
	}
}
