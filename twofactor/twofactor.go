// Package twofactor contains TOTP helpers for the 2FA enrollment flow:
// the server returns a secret and otpauth URL, the authenticator app
// produces codes, and the client can pre-check a code locally before
// the verify round-trip.
package twofactor

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// SecretFromURL extracts the shared secret from an otpauth:// URL as
// returned by 2FA setup.
func SecretFromURL(otpauthURL string) (string, error) {
	key, err := otp.NewKeyFromURL(otpauthURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse otpauth url: %w", err)
	}
	return key.Secret(), nil
}

// Code generates the TOTP code for the secret at time t.
func Code(secret string, t time.Time) (string, error) {
	code, err := totp.GenerateCode(secret, t)
	if err != nil {
		return "", fmt.Errorf("failed to generate totp code: %w", err)
	}
	return code, nil
}

// Validate checks a code against the secret for the current time
// window.
func Validate(code, secret string) bool {
	return totp.Validate(code, secret)
}
