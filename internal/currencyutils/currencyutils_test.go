package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNullToken(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"null", true},
		{"NULL", true},
		{"NaN", true},
		{"None", true},
		{"-", true},
		{"  null  ", true},
		{"0", false},
		{"1234.56", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsNullToken(tt.input), "input=%q", tt.input)
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Thousands separators", "1,234.56", "1234.56"},
		{"Dollar symbol", "$ 1234.56", "1234.56"},
		{"Soles symbol", "S/. 2,500.00", "2500.00"},
		{"Short soles symbol", "S/2500", "2500"},
		{"Percent sign", "12.5%", "12.5"},
		{"US prefix", "US 100.00", "100.00"},
		{"Already clean", "99.90", "99.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StandardizeAmount(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("S/. 1,234.56")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromFloat(1234.56)))

	amount, err = ParseAmount("null")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	amount, err = ParseAmount("")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	_, err = ParseAmount("no-es-numero")
	assert.Error(t, err)

	amount, err = ParseAmount("-350.75")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromFloat(-350.75)))
}

func TestParseAmountLenient(t *testing.T) {
	assert.True(t, ParseAmountLenient("no-es-numero").IsZero())
	assert.True(t, ParseAmountLenient("nan").IsZero())
	assert.True(t, ParseAmountLenient("100").Equal(decimal.NewFromInt(100)))
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)
	assert.Equal(t, "PEN 1234.50", FormatAmount(amount, CurrencyPEN))
	assert.Equal(t, "1234.50", FormatAmount(amount, ""))
}
