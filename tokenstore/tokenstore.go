// Package tokenstore persists the bearer token encrypted at rest and
// answers expiry questions about it.
package tokenstore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	keySize    = 32
	pbkdf2Iter = 100_000
)

var (
	// ErrNoToken means no token has been saved yet.
	ErrNoToken = errors.New("no stored token")

	errCiphertextShort = errors.New("stored token is corrupt: ciphertext too short")
)

// Store reads and writes an encrypted token file. The encryption key is
// derived from the passphrase with PBKDF2; the salt is stored in the
// file itself so the passphrase alone recovers the token.
type Store struct {
	path       string
	passphrase []byte
}

// New creates a store at path. The passphrase must be non-empty.
func New(path, passphrase string) (*Store, error) {
	if path == "" {
		return nil, errors.New("token file path is required")
	}
	if passphrase == "" {
		return nil, errors.New("token passphrase is required")
	}
	return &Store{path: path, passphrase: []byte(passphrase)}, nil
}

// Save encrypts and writes the token, creating parent directories as
// needed. The file is owner-readable only.
func (s *Store) Save(token string) error {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(token), nil)
	payload := base64.StdEncoding.EncodeToString(append(salt, sealed...))

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(payload), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Load decrypts and returns the stored token. A missing file yields
// ErrNoToken.
func (s *Store) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode token file: %w", err)
	}
	if len(decoded) < saltSize {
		return "", errCiphertextShort
	}

	salt, sealed := decoded[:saltSize], decoded[saltSize:]
	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	if len(sealed) < gcm.NonceSize() {
		return "", errCiphertextShort
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}
	return string(plain), nil
}

// Clear removes the stored token. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// Source adapts the store to the api.TokenSource shape. A missing token
// resolves to the empty string so requests go out unauthenticated.
func (s *Store) Source() func() (string, error) {
	return func() (string, error) {
		token, err := s.Load()
		if errors.Is(err, ErrNoToken) {
			return "", nil
		}
		return token, err
	}
}

func (s *Store) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(s.passphrase, salt, pbkdf2Iter, keySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to build cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to build gcm: %w", err)
	}
	return gcm, nil
}

// Expiry returns the token's exp claim without verifying the
// signature; the client only needs it for refresh decisions, not
// trust.
func Expiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}
	return exp.Time, nil
}

// Valid reports whether the token exists and has not expired at now.
// Unparseable tokens and tokens without an exp claim count as invalid.
func Valid(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	exp, err := Expiry(token)
	if err != nil {
		return false
	}
	return exp.After(now)
}
