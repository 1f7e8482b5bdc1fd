package models

import (
	"time"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/dateutils"
)

// TipoPago values with pipeline-specific meaning. Any other value passes
// through from the source unchanged.
const (
	TipoPagoParcial      = "PAGO PARCIAL"
	TipoPagoFueraSistema = "FUERA_SISTEMA"
)

// Pago is a payment event tied to one IdLiquidacionDet. An operation has
// zero or more payments. IdLiquidacionPago is a pointer because the
// synthesized out-of-system companions may legitimately lack one.
type Pago struct {
	IdLiquidacionPago *int64    `csv:"IdLiquidacionPago"`
	IdLiquidacionDet  int64     `csv:"IdLiquidacionDet"`
	FechaPago         time.Time `csv:"-"`

	TipoPago   string          `csv:"TipoPago"`
	MontoPago  decimal.Decimal `csv:"MontoPago"`
	SaldoDeuda decimal.Decimal `csv:"SaldoDeuda"`
}

// Row flattens the payment for the persistence sink.
func (p Pago) Row() map[string]interface{} {
	row := map[string]interface{}{
		"IdLiquidacionDet": p.IdLiquidacionDet,
		"TipoPago":         p.TipoPago,
		"MontoPago":        p.MontoPago.InexactFloat64(),
		"SaldoDeuda":       p.SaldoDeuda.InexactFloat64(),
	}
	if p.IdLiquidacionPago != nil {
		row["IdLiquidacionPago"] = *p.IdLiquidacionPago
	} else {
		row["IdLiquidacionPago"] = nil
	}
	if !p.FechaPago.IsZero() {
		row["FechaPago"] = dateutils.ToISODate(p.FechaPago)
	} else {
		row["FechaPago"] = nil
	}
	return row
}

// Devolucion is a refund event tied to one IdLiquidacionDet.
type Devolucion struct {
	IdLiquidacionDevolucion *int64 `csv:"IdLiquidacionDevolucion"`
	IdLiquidacionDet        int64  `csv:"IdLiquidacionDet"`

	MontoDevolucion  decimal.Decimal `csv:"MontoDevolucion"`
	EstadoDevolucion string          `csv:"EstadoDevolucion"`
}

// Row flattens the refund for the persistence sink.
func (d Devolucion) Row() map[string]interface{} {
	row := map[string]interface{}{
		"IdLiquidacionDet": d.IdLiquidacionDet,
		"MontoDevolucion":  d.MontoDevolucion.InexactFloat64(),
		"EstadoDevolucion": d.EstadoDevolucion,
	}
	if d.IdLiquidacionDevolucion != nil {
		row["IdLiquidacionDevolucion"] = *d.IdLiquidacionDevolucion
	} else {
		row["IdLiquidacionDevolucion"] = nil
	}
	return row
}
