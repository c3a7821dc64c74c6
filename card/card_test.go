package card

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"visa", "4242424242424242", "Visa"},
		{"visa with spaces", "4242 4242 4242 4242", "Visa"},
		{"mastercard 51", "5105105105105100", "Mastercard"},
		{"mastercard 55", "5555555555554444", "Mastercard"},
		{"amex 34", "340000000000009", "American Express"},
		{"amex 37", "378282246310005", "American Express"},
		{"discover", "6011111111111117", "Discover"},
		{"unknown prefix", "9999999999999999", "Card"},
		{"mastercard range excludes 50", "5010000000000000", "Card"},
		{"empty", "", "Card"},
		{"non-digits only", "abcd", "Card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Brand(tt.number))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"full pan", "4242424242424242", "4242 4242 4242 4242"},
		{"strips existing spaces", "4242 4242 4242 4242", "4242 4242 4242 4242"},
		{"strips letters and dashes", "4242-4242-abcd-4242", "4242 4242 4242"},
		{"partial group at end", "424242424", "4242 4242 4"},
		{"truncates beyond sixteen digits", "42424242424242421111", "4242 4242 4242 4242"},
		{"short input passes through", "42", "42"},
		{"exactly four", "4242", "4242"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, FormatNumber(tt.number))
		})
	}
}

func TestLast4(t *testing.T) {
	t.Parallel()

	require.Equal(t, "4242", Last4("4242 4242 4242 4242"))
	require.Equal(t, "009", Last4("009"))
	require.Equal(t, "", Last4(""))
}

func TestValidRoutingNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"nine digits", "021000021", true},
		{"eight digits", "02100002", false},
		{"ten digits", "0210000211", false},
		{"letters", "02100002a", false},
		{"empty", "", false},
		{"spaces inside", "021 000 021", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ValidRoutingNumber(tt.input))
		})
	}
}
