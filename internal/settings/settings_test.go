package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "notedav", "config.yaml"))
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "system", settings.Theme)
	assert.True(t, settings.Autosave)
	assert.True(t, settings.Server.Empty())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := DefaultSettings()
	in.Theme = "dark"
	in.Server = Credentials{URL: "https://dav.example.com/remote.php", Username: "alice", Password: "secret"}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveRestrictsPermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(DefaultSettings()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSetCredentialsValidates(t *testing.T) {
	store := newTestStore(t)

	err := store.SetCredentials(Credentials{URL: "not a url", Username: "alice"})
	assert.Error(t, err)

	err = store.SetCredentials(Credentials{URL: "https://dav.example.com", Username: ""})
	assert.Error(t, err)

	_, ok, loadErr := store.Credentials()
	require.NoError(t, loadErr)
	assert.False(t, ok, "rejected credentials must not be persisted")
}

func TestCredentialsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	creds := Credentials{URL: "https://dav.example.com", Username: "alice", Password: "secret"}
	require.NoError(t, store.SetCredentials(creds))

	got, ok, err := store.Credentials()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, creds, got)

	require.NoError(t, store.ClearCredentials())
	_, ok, err = store.Credentials()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearCredentialsKeepsRest(t *testing.T) {
	store := newTestStore(t)

	settings := DefaultSettings()
	settings.Theme = "dark"
	settings.Server = Credentials{URL: "https://dav.example.com", Username: "alice"}
	require.NoError(t, store.Save(settings))

	require.NoError(t, store.ClearCredentials())

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", out.Theme)
	assert.True(t, out.Server.Empty())
}

func TestDeviceIDStable(t *testing.T) {
	store := newTestStore(t)

	id, err := store.DeviceID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "cli-"), "id = %q", id)
	assert.Len(t, id, len("cli-")+16)

	// A second store on the same path sees the persisted id.
	again, err := NewStore(store.Path()).DeviceID()
	require.NoError(t, err)
	assert.Equal(t, id, again)
}
