package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

var hashSalt string

func init() {
	// In production, set LOG_HASH_SALT environment variable.
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// HashAccountID creates a privacy-preserving hash of an account or user
// identifier so actions can be correlated without exposing the real ID.
func HashAccountID(id string) string {
	data := fmt.Sprintf("%s:%s", id, hashSalt)
	hash := sha256.Sum256([]byte(data))
	// First 8 characters for readability.
	return hex.EncodeToString(hash[:])[:8]
}

// MaskCard reduces a card or account number to its last four digits.
// Everything shorter than four digits is fully masked.
func MaskCard(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if len(digits) < 4 {
		return "****"
	}
	return "****" + digits[len(digits)-4:]
}

// SanitizeText is a general-purpose sanitizer for user-provided text
// such as chat messages and descriptions.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}

	if len(text) <= 10 {
		return fmt.Sprintf("<%d chars>", len(text))
	}

	return fmt.Sprintf("%s...<%d chars>", text[:3], len(text))
}
