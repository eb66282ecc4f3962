package notedav

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/notedav/pkg/core"
)

// options holds the internal configuration for a session's client.
type options struct {
	logger     *slog.Logger
	timeout    time.Duration
	httpClient *http.Client
	repository core.Repository
}

// Option defines a functional option for configuring a connection.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTimeout overrides the per-request timeout of the transport.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient injects a custom HTTP client (useful for testing).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default WebDAV adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
