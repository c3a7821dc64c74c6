// Package card contains pure helpers for payment-card entry: brand
// detection from number prefixes, display formatting, and routing
// number checks.
package card

import (
	"regexp"
	"strings"
)

// FallbackBrand is returned when no prefix pattern matches.
const FallbackBrand = "Card"

// maxDisplayDigits caps the formatted display at the longest common PAN.
const maxDisplayDigits = 16

type brandPattern struct {
	name    string
	pattern *regexp.Regexp
}

// Ordered; first match wins.
var brandPatterns = []brandPattern{
	{"Visa", regexp.MustCompile(`^4`)},
	{"Mastercard", regexp.MustCompile(`^5[1-5]`)},
	{"American Express", regexp.MustCompile(`^3[47]`)},
	{"Discover", regexp.MustCompile(`^6`)},
}

var routingNumberPattern = regexp.MustCompile(`^\d{9}$`)

// Digits strips everything except ASCII digits from s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Brand detects the card brand from the number's leading digits.
// Spaces and non-digits are ignored. Every input maps to exactly one of
// Visa, Mastercard, American Express, Discover, or FallbackBrand.
func Brand(number string) string {
	clean := Digits(number)
	for _, b := range brandPatterns {
		if b.pattern.MatchString(clean) {
			return b.name
		}
	}
	return FallbackBrand
}

// FormatNumber renders a card number for display: digits only, grouped
// in runs of four separated by single spaces, truncated to the first
// sixteen digits. Inputs shorter than four digits pass through as-is.
func FormatNumber(number string) string {
	clean := Digits(number)
	if len(clean) < 4 {
		return clean
	}
	if len(clean) > maxDisplayDigits {
		clean = clean[:maxDisplayDigits]
	}

	var parts []string
	for i := 0; i < len(clean); i += 4 {
		end := i + 4
		if end > len(clean) {
			end = len(clean)
		}
		parts = append(parts, clean[i:end])
	}
	return strings.Join(parts, " ")
}

// Last4 returns the trailing four digits of a card or account number,
// or the whole cleaned number when shorter.
func Last4(number string) string {
	clean := Digits(number)
	if len(clean) <= 4 {
		return clean
	}
	return clean[len(clean)-4:]
}

// ValidRoutingNumber reports whether s is exactly nine digits, the ABA
// routing number format.
func ValidRoutingNumber(s string) bool {
	return routingNumberPattern.MatchString(s)
}
