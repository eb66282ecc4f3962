package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrNotConnected is returned when an operation is attempted without an
	// active client in the session.
	ErrNotConnected = errors.New("not connected to server")

	// ErrInvalidCredentials is returned when the server rejects the
	// configured username/password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ProtocolError reports a WebDAV request that came back with an unexpected
// status. Body carries the response body when it was read (PUT failures).
type ProtocolError struct {
	Op     string
	Status int
	Body   string
}

func (e *ProtocolError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("webdav error: %s failed: %d - %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("webdav error: %s failed: %d", e.Op, e.Status)
}

// NotFoundError reports a note id that has no canonical JSON resource.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "note not found: " + e.ID
}

// ParseError reports malformed JSON or a text document without frontmatter.
type ParseError struct {
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Detail, e.Err)
	}
	return "parse error: " + e.Detail
}

func (e *ParseError) Unwrap() error { return e.Err }

// NetworkError reports a transport-level failure (connection refused,
// timeout, TLS handshake) as opposed to an HTTP status the server returned.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimestampError reports a timestamp string no supported format accepts.
type TimestampError struct {
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: %q", e.Value)
}

// StorageError reports a failure of the local settings/credentials store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
