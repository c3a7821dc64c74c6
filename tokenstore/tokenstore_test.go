package tokenstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "token")
	store, err := New(path, "correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, store.Save("my-secret-token"))

	// Owner-only permissions on the file itself.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// The token never touches disk in the clear.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "my-secret-token")

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "my-secret-token", loaded)
}

func TestStoreWrongPassphrase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	store, err := New(path, "right")
	require.NoError(t, err)
	require.NoError(t, store.Save("tok"))

	wrong, err := New(path, "wrong")
	require.NoError(t, err)
	_, err = wrong.Load()
	require.ErrorContains(t, err, "failed to decrypt token")
}

func TestStoreMissingToken(t *testing.T) {
	t.Parallel()

	store, err := New(filepath.Join(t.TempDir(), "token"), "pass")
	require.NoError(t, err)

	_, err = store.Load()
	require.ErrorIs(t, err, ErrNoToken)
}

func TestStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("not base64 at all!!"), 0o600))

	store, err := New(path, "pass")
	require.NoError(t, err)
	_, err = store.Load()
	require.ErrorContains(t, err, "failed to decode token file")
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "token")
	store, err := New(path, "pass")
	require.NoError(t, err)

	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())
	_, err = store.Load()
	require.ErrorIs(t, err, ErrNoToken)

	// Clearing again is fine.
	require.NoError(t, store.Clear())
}

func TestStoreValidation(t *testing.T) {
	t.Parallel()

	_, err := New("", "pass")
	require.ErrorContains(t, err, "path is required")

	_, err = New("/tmp/token", "")
	require.ErrorContains(t, err, "passphrase is required")
}

func TestSourceMapsMissingToEmpty(t *testing.T) {
	t.Parallel()

	store, err := New(filepath.Join(t.TempDir(), "token"), "pass")
	require.NoError(t, err)

	token, err := store.Source()()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.Save("tok"))
	token, err = store.Source()()
	require.NoError(t, err)
	require.Equal(t, "tok", token)
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, err := Expiry(signedToken(t, exp))
	require.NoError(t, err)
	require.True(t, got.Equal(exp))

	_, err = Expiry("garbage")
	require.ErrorContains(t, err, "failed to parse token")
}

func TestValid(t *testing.T) {
	t.Parallel()

	now := time.Now()

	require.True(t, Valid(signedToken(t, now.Add(time.Hour)), now))
	require.False(t, Valid(signedToken(t, now.Add(-time.Hour)), now))
	require.False(t, Valid("", now))
	require.False(t, Valid("garbage", now))
}
