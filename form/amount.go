package form

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches amounts like "5", "5.50", "5,50" at the start
// of the input.
var amountPattern = regexp.MustCompile(`^(\d+(?:[.,]\d{1,2})?)$`)

var (
	errInvalidAmountFormat = errors.New("invalid amount format")
	errNonPositiveAmount   = errors.New("amount must be greater than zero")
)

// parseAmount converts raw field text into a positive decimal amount.
func parseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if !amountPattern.MatchString(input) {
		return decimal.Zero, errInvalidAmountFormat
	}

	input = strings.ReplaceAll(input, ",", ".")
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, errInvalidAmountFormat
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errNonPositiveAmount
	}

	return amount, nil
}
