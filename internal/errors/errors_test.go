package errors

import (
	"errors"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindNetwork, "network error"},
		{KindAPI, "api error"},
		{KindConfig, "configuration error"},
		{KindIO, "I/O error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE_WithoutUnderlying(t *testing.T) {
	err := E(Op("test.Op"), KindInvalid, "bad input")
	if err.Error() != "test.Op: bad input" {
		t.Errorf("E() = %q, want %q", err.Error(), "test.Op: bad input")
	}
	if !Is(err, KindInvalid) {
		t.Error("Is() should match KindInvalid")
	}
}

func TestIs_And_GetKind(t *testing.T) {
	err := RoomCreateFailed(errors.New("status 500"))

	if !Is(err, KindAPI) {
		t.Error("RoomCreateFailed should be KindAPI")
	}
	if Is(err, KindNetwork) {
		t.Error("RoomCreateFailed should not be KindNetwork")
	}
	if got := GetKind(err); got != KindAPI {
		t.Errorf("GetKind() = %v, want KindAPI", got)
	}
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind(plain error) = %v, want KindUnknown", got)
	}
}

func TestUnexpectedStatus(t *testing.T) {
	err := UnexpectedStatus(Op("api.CreateRoom"), 503)
	want := "api.CreateRoom: backend returned status 503"
	if err.Error() != want {
		t.Errorf("UnexpectedStatus() = %q, want %q", err.Error(), want)
	}
}
