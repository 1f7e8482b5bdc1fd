// Package reconcile implements the domain calculators: exchange rates,
// sector mapping, payments and refunds, out-of-system injection, and the
// accumulated-DIM reconciliation that joins them all.
package reconcile

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
)

// FallbackTipoCambio is applied when no exchange-rate data is available at
// all; the legacy model uses the same constant.
var FallbackTipoCambio = decimal.NewFromFloat(3.8)

// TipoCambioCalcular owns the daily exchange-rate dataset and resolves the
// rate in force for any date.
type TipoCambioCalcular struct {
	rates    []models.TipoCambio
	fallback decimal.Decimal
	logger   logging.Logger
}

// NewTipoCambioCalcular builds the calculator over validated rate rows,
// sorted ascending by date. A non-positive fallback selects the default.
func NewTipoCambioCalcular(rates []models.TipoCambio, fallback decimal.Decimal, logger logging.Logger) *TipoCambioCalcular {
	sorted := make([]models.TipoCambio, len(rates))
	copy(sorted, rates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TipoCambioFecha.Before(sorted[j].TipoCambioFecha)
	})
	if !fallback.IsPositive() {
		fallback = FallbackTipoCambio
	}
	return &TipoCambioCalcular{rates: sorted, fallback: fallback, logger: logger}
}

// VentaPara returns the sell rate in force on fecha: the row with the
// maximum date not after it. With no such row the fallback applies.
func (c *TipoCambioCalcular) VentaPara(fecha time.Time) decimal.Decimal {
	// Rates are sorted ascending; find the last row with date <= fecha.
	idx := sort.Search(len(c.rates), func(i int) bool {
		return c.rates[i].TipoCambioFecha.After(fecha)
	})
	if idx == 0 {
		if c.logger != nil {
			c.logger.Warn("sin tipo de cambio para la fecha, usando constante",
				logging.F("fecha", fecha.Format("2006-01-02")),
				logging.F("fallback", c.fallback.String()))
		}
		return c.fallback
	}
	return c.rates[idx-1].TipoCambioVenta
}

// Actual returns the current sell rate for the run's cutoff date.
func (c *TipoCambioCalcular) Actual(fechaCorte time.Time) decimal.Decimal {
	return c.VentaPara(fechaCorte)
}

// Calcular returns the validated rate rows in ascending date order.
func (c *TipoCambioCalcular) Calcular() []models.TipoCambio {
	return c.rates
}
