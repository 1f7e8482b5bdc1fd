// Package currencyutils provides amount parsing and formatting for the
// loosely-typed values coming from the operations webservice and the
// spreadsheet-backed sources.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency codes handled by the pipeline.
const (
	CurrencyPEN = "PEN"
	CurrencyUSD = "USD"
)

// nullTokens are raw string values that mean "no value" in the sources.
var nullTokens = map[string]bool{
	"":     true,
	"null": true,
	"nan":  true,
	"none": true,
	"-":    true,
}

// IsNullToken reports whether a raw string value means "no value".
func IsNullToken(s string) bool {
	return nullTokens[strings.ToLower(strings.TrimSpace(s))]
}

// StandardizeAmount strips the decoration the sources attach to numbers:
// thousands separators, currency symbols ("$", "S/"), percent signs and
// stray whitespace. "1,234.56", "$ 1234.56" and "12.5%" all become plain
// decimal strings.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	for _, sym := range []string{"S/.", "S/", "$", "%", "US", " "} {
		amountStr = strings.ReplaceAll(amountStr, sym, "")
	}
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	return amountStr
}

// ParseAmount parses a raw amount string into a decimal. Null tokens and
// empty strings parse to zero; anything else must be a valid number after
// standardization.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if IsNullToken(amountStr) {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// ParseAmountLenient parses like ParseAmount but maps unparsable strings to
// zero instead of failing. Optional numeric fields use this form.
func ParseAmountLenient(amountStr string) decimal.Decimal {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// FormatAmount formats a decimal with two decimal places and an optional
// currency code prefix ("PEN 1234.50").
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return currency + " " + formatted
}
