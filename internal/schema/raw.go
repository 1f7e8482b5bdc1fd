// Package schema validates the loosely-typed records returned by the
// webservice and sheet sources into strict typed models. One validator per
// data kind; coercion rules are uniform across kinds.
package schema

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/currencyutils"
	"andescapital/cxc-etl/internal/dateutils"
)

// Raw is one record as decoded from a source JSON array: values are
// strings, float64s, bools, nil, or already-typed numbers.
type Raw map[string]interface{}

// rawString renders a raw value to its string form, mapping nil and NaN
// floats to the empty string.
func rawString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return decimal.NewFromFloat(val).String()
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// Texto coerces a required text field: nil/NaN and null tokens become "".
func (r Raw) Texto(key string) string {
	s := rawString(r[key])
	if currencyutils.IsNullToken(s) {
		return ""
	}
	return s
}

// Decimal coerces an optional numeric field. Null tokens and unparsable
// strings map to zero; they never fail.
func (r Raw) Decimal(key string) decimal.Decimal {
	switch val := r[key].(type) {
	case float64:
		if math.IsNaN(val) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	default:
		return currencyutils.ParseAmountLenient(rawString(r[key]))
	}
}

// DecimalRequerido coerces a mandatory numeric field; unparsable input is
// an error, but null tokens still default to zero per the batch rules.
func (r Raw) DecimalRequerido(key string) (decimal.Decimal, error) {
	s := rawString(r[key])
	if currencyutils.IsNullToken(s) {
		return decimal.Zero, nil
	}
	amount, err := currencyutils.ParseAmount(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("campo %s: %w", key, err)
	}
	return amount, nil
}

// Entero coerces a mandatory integer ID. Floats are truncated toward zero
// (never rounded); numeric strings go through float-then-int so "123.0"
// parses. Missing or unparsable values are an error.
func (r Raw) Entero(key string) (int64, error) {
	s := rawString(r[key])
	if currencyutils.IsNullToken(s) {
		return 0, fmt.Errorf("campo %s: valor entero requerido", key)
	}
	amount, err := currencyutils.ParseAmount(s)
	if err != nil {
		return 0, fmt.Errorf("campo %s: %w", key, err)
	}
	return amount.IntPart(), nil
}

// EnteroOpcional coerces an integer ID that only exists for in-system
// records: unparsable input resolves to nil, never an error.
func (r Raw) EnteroOpcional(key string) *int64 {
	s := rawString(r[key])
	if currencyutils.IsNullToken(s) {
		return nil
	}
	amount, err := currencyutils.ParseAmount(s)
	if err != nil {
		return nil
	}
	id := amount.IntPart()
	return &id
}

// Fecha coerces a required date field using the ordered source formats.
func (r Raw) Fecha(key string) (time.Time, error) {
	s := rawString(r[key])
	if currencyutils.IsNullToken(s) {
		return time.Time{}, fmt.Errorf("campo %s: fecha requerida", key)
	}
	t, err := dateutils.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("campo %s: %w", key, err)
	}
	return t, nil
}

// FechaOpcional coerces an optional date; anything unparsable becomes the
// zero time.
func (r Raw) FechaOpcional(key string) time.Time {
	s := rawString(r[key])
	if currencyutils.IsNullToken(s) {
		return time.Time{}
	}
	t, err := dateutils.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EnteroComoInt coerces a small mandatory integer (day counts) with the
// same truncation rules as Entero.
func (r Raw) EnteroComoInt(key string) (int, error) {
	v, err := r.Entero(key)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
