package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Adhering to this interface keeps the session and the CLI independent of
// the underlying document store (WebDAV today; a mock or a different
// protocol tomorrow).
type Repository interface {
	// Initialize ensures the underlying storage is ready
	// (e.g. create the remote directories). Best-effort.
	Initialize(ctx context.Context) error

	// Save persists a note. It creates if not exists, or overwrites if it
	// does; last writer wins.
	Save(ctx context.Context, n Note) error

	// Get retrieves a note by its id.
	Get(ctx context.Context, id string) (Note, error)

	// List returns summaries of all available notes, most recently
	// updated first.
	List(ctx context.Context) ([]NoteSummary, error)

	// Delete removes a note. It takes the full note because secondary
	// resources may be addressed by fields other than the id.
	Delete(ctx context.Context, n Note) error
}

// Prober is an optional capability for repositories that can verify their
// connection before use.
type Prober interface {
	// TestConnection probes the store and reports whether it is usable.
	TestConnection(ctx context.Context) (bool, error)
}
