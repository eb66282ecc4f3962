package core

import (
	"errors"
	"testing"
)

func TestProtocolErrorMessage(t *testing.T) {
	err := &ProtocolError{Op: "PUT", Status: 507, Body: "insufficient storage"}
	want := "webdav error: PUT failed: 507 - insufficient storage"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &ProtocolError{Op: "connection test", Status: 500}
	want = "webdav error: connection test failed: 500"
	if bare.Error() != want {
		t.Errorf("Error() = %q, want %q", bare.Error(), want)
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{ID: "abc"}
	if err.Error() != "note not found: abc" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")

	for _, err := range []error{
		&ParseError{Detail: "bad json", Err: cause},
		&NetworkError{Op: "GET", Err: cause},
		&StorageError{Op: "write config", Err: cause},
	} {
		if !errors.Is(err, cause) {
			t.Errorf("%T should unwrap to its cause", err)
		}
	}
}

func TestTimestampErrorMessage(t *testing.T) {
	err := &TimestampError{Value: "garbage"}
	if err.Error() != `invalid timestamp: "garbage"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
