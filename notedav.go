// Package notedav is a client-side synchronization layer for note documents
// stored on a WebDAV server. Each note lives on the server twice: as a
// canonical JSON document and as a human-readable markdown mirror with
// frontmatter. The package discovers, fetches, persists, and deletes notes,
// keeping the two representations consistent through a defined
// reconciliation policy (the JSON is authoritative, the mirror best-effort,
// and a server modification time only ever moves updatedAt forward).
package notedav

import "context"

// Connect creates a session and connects it to the given server in one
// call.
//
//	session, err := notedav.Connect(ctx, "https://dav.example.com", "user", "secret")
func Connect(ctx context.Context, url, username, password string, opts ...Option) (*Session, error) {
	s := NewSession()
	if err := s.Connect(ctx, url, username, password, opts...); err != nil {
		return nil, err
	}
	return s, nil
}
