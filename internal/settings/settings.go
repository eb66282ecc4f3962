// Package settings persists local preferences, server credentials, and the
// device identifier in a YAML file under the user config directory.
package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notedav/pkg/core"
)

// Credentials identify a WebDAV server and account.
type Credentials struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Validate checks that the credentials are usable before a connect attempt.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URL, validation.Required, is.URL),
		validation.Field(&c.Username, validation.Required),
	)
}

// Empty reports whether no credentials are stored.
func (c Credentials) Empty() bool {
	return c == Credentials{}
}

// Settings is everything the client persists locally. Theme and Autosave
// are carried for the UI shell; nothing here interprets them.
type Settings struct {
	Server   Credentials `yaml:"server"`
	DeviceID string      `yaml:"device_id"`
	Theme    string      `yaml:"theme"`
	Autosave bool        `yaml:"autosave"`
}

// DefaultSettings returns the settings used before anything is persisted.
func DefaultSettings() Settings {
	return Settings{
		Theme:    "system",
		Autosave: true,
	}
}

// Store reads and writes the settings file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store backed by an explicit file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore places the settings under the user config directory.
func DefaultStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, &core.StorageError{Op: "resolve config dir", Err: err}
	}
	return NewStore(filepath.Join(dir, "notedav", "config.yaml")), nil
}

// Path returns the location of the settings file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted settings, or defaults when no file exists yet.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, &core.StorageError{Op: "read settings", Err: err}
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, &core.StorageError{Op: "decode settings", Err: err}
	}
	return settings, nil
}

// Save persists the settings, creating the parent directory when needed.
// Credentials are stored in it, hence the restrictive permissions.
func (s *Store) Save(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return &core.StorageError{Op: "encode settings", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &core.StorageError{Op: "create config dir", Err: err}
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return &core.StorageError{Op: "write settings", Err: err}
	}
	return nil
}

// Credentials returns the stored server credentials and whether any exist.
func (s *Store) Credentials() (Credentials, bool, error) {
	settings, err := s.Load()
	if err != nil {
		return Credentials{}, false, err
	}
	if settings.Server.Empty() {
		return Credentials{}, false, nil
	}
	return settings.Server, true, nil
}

// SetCredentials validates and stores server credentials.
func (s *Store) SetCredentials(creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	settings, err := s.Load()
	if err != nil {
		return err
	}
	settings.Server = creds
	return s.Save(settings)
}

// ClearCredentials drops the stored server credentials, keeping the rest.
func (s *Store) ClearCredentials() error {
	settings, err := s.Load()
	if err != nil {
		return err
	}
	settings.Server = Credentials{}
	return s.Save(settings)
}

// DeviceID returns the stable writer identifier for this installation,
// generating and persisting one on first use.
func (s *Store) DeviceID() (string, error) {
	settings, err := s.Load()
	if err != nil {
		return "", err
	}
	if settings.DeviceID != "" {
		return settings.DeviceID, nil
	}

	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	settings.DeviceID = "cli-" + raw[:16]
	if err := s.Save(settings); err != nil {
		return "", err
	}
	return settings.DeviceID, nil
}
