package notedav

import (
	"context"
	"sync"

	"github.com/aretw0/notedav/pkg/adapters/webdav"
	"github.com/aretw0/notedav/pkg/core"
)

// Session is the connection slot shared by the command layer: an explicit
// disconnected/connected handle behind a single point of mutation. Writes
// to the slot are serialized by the mutex; operations snapshot the current
// client and may run concurrently against it.
type Session struct {
	mu     sync.RWMutex
	client core.Repository
}

// NewSession creates a disconnected session.
func NewSession() *Session {
	return &Session{}
}

// Connect builds a client for the given server, verifies the connection,
// and installs the client as the session's current one. On a fresh server
// the probe bootstraps the storage directories.
func (s *Session) Connect(ctx context.Context, url, username, password string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = webdav.New(webdav.Config{
			URL:        url,
			Username:   username,
			Password:   password,
			Timeout:    o.timeout,
			Logger:     o.logger,
			HTTPClient: o.httpClient,
		})
	}

	if prober, ok := repo.(core.Prober); ok {
		if _, err := prober.TestConnection(ctx); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.client = repo
	s.mu.Unlock()
	return nil
}

// Disconnect drops the current client.
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.client = nil
	s.mu.Unlock()
}

// Connected reports whether a client is installed.
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client != nil
}

// Client returns the current client, or ErrNotConnected.
func (s *Session) Client() (core.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.client == nil {
		return nil, core.ErrNotConnected
	}
	return s.client, nil
}

// ListNotes returns summaries of all notes, most recently updated first.
func (s *Session) ListNotes(ctx context.Context) ([]core.NoteSummary, error) {
	repo, err := s.Client()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

// GetNote fetches a single note by id.
func (s *Session) GetNote(ctx context.Context, id string) (core.Note, error) {
	repo, err := s.Client()
	if err != nil {
		return core.Note{}, err
	}
	return repo.Get(ctx, id)
}

// SaveNote stamps the note's UpdatedAt to now, performs the dual write,
// and returns the stamped note.
func (s *Session) SaveNote(ctx context.Context, n core.Note) (core.Note, error) {
	repo, err := s.Client()
	if err != nil {
		return core.Note{}, err
	}
	n.Touch()
	if err := repo.Save(ctx, n); err != nil {
		return core.Note{}, err
	}
	return n, nil
}

// DeleteNote removes a note by id. The note is fetched first because the
// mirror resource is addressed by its title, not its id.
func (s *Session) DeleteNote(ctx context.Context, id string) error {
	repo, err := s.Client()
	if err != nil {
		return err
	}
	n, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, n)
}
