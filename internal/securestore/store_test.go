package securestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smallbiznis/reparo/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "credentials.bin"), "hunter2")
	require.NoError(t, err)
	return store
}

func TestSaveReadDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("gateway_token", "tok-123"))
	require.NoError(t, store.Save("admin_pin", "0000"))

	value, ok, err := store.Read("gateway_token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-123", value)

	all, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gateway_token": "tok-123", "admin_pin": "0000"}, all)

	require.NoError(t, store.Delete("gateway_token"))

	_, ok, err = store.Read("gateway_token")
	require.NoError(t, err)
	assert.False(t, ok)

	all, err = store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"admin_pin": "0000"}, all)
}

func TestReadMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Read("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("k", "v"))
	require.NoError(t, store.Delete("nope"))

	all, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "v"}, all)
}

func TestFileIsEncryptedAtRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.bin")
	store, err := New(path, "hunter2")
	require.NoError(t, err)
	require.NoError(t, store.Save("gateway_token", "tok-123"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok-123")
	assert.NotContains(t, string(raw), "gateway_token")
}

func TestWrongPassphraseFailsToOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.bin")
	store, err := New(path, "hunter2")
	require.NoError(t, err)
	require.NoError(t, store.Save("k", "v"))

	other, err := New(path, "wrong")
	require.NoError(t, err)
	_, err = other.ReadAll()
	assert.Error(t, err)
}

func TestEmptyPassphraseRejected(t *testing.T) {
	_, err := New("x", "")
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
}

// A blank REPARO_SECURE_STORE_KEY must fail construction, which the fx
// module triggers at startup.
func TestNewFromConfigRejectsEmptyKey(t *testing.T) {
	_, err := NewFromConfig(config.Config{
		SecureStorePath: filepath.Join(t.TempDir(), "credentials.bin"),
	})
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
}
