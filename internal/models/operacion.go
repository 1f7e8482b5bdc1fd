// Package models defines the record types that flow through the CXC
// pipeline. Records are created fresh on every run; nothing here has
// identity until the sink writes it.
package models

import (
	"time"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/dateutils"
)

// Product types tracked by the pipeline.
const (
	ProductoFactoring        = "Factoring"
	ProductoConfirming       = "Confirming"
	ProductoCapitalDeTrabajo = "Capital de Trabajo"
)

// FueraSistemaSi marks operations tracked outside the source system.
const FueraSistemaSi = "si"

// Operacion is one factoring/confirming/working-capital operation as pulled
// from the accumulated webservice endpoint (or synthesized from the
// out-of-system sheets). (IdLiquidacionCab, IdLiquidacionDet) uniquely
// identifies a record; synthetic records carry IDs >= 1,000,000.
type Operacion struct {
	IdLiquidacionCab int64  `csv:"IdLiquidacionCab"`
	IdLiquidacionDet int64  `csv:"IdLiquidacionDet"`
	CodigoLiquidacion string `csv:"CodigoLiquidacion"`
	NroDocumento      string `csv:"NroDocumento"`

	RUCCliente         string `csv:"RUCCliente"`
	RazonSocialCliente string `csv:"RazonSocialCliente"`
	RUCPagador         string `csv:"RUCPagador"`
	RazonSocialPagador string `csv:"RazonSocialPagador"`

	Moneda        string `csv:"Moneda"`
	TipoOperacion string `csv:"TipoOperacion"`
	Ejecutivo     string `csv:"Ejecutivo"`

	NetoConfirmado               decimal.Decimal `csv:"NetoConfirmado"`
	MontoDesembolso              decimal.Decimal `csv:"MontoDesembolso"`
	Intereses                    decimal.Decimal `csv:"Intereses"`
	GastosContrato               decimal.Decimal `csv:"GastosContrato"`
	GastosDiversos               decimal.Decimal `csv:"GastosDiversos"`
	ComisionEstructuracion       decimal.Decimal `csv:"ComisionEstructuracion"`
	ComisionEstructuracionConIGV decimal.Decimal `csv:"ComisionEstructuracionConIGV"`
	TasaNominalMensual           decimal.Decimal `csv:"TasaNominalMensual"`

	DiasEfectivo    int       `csv:"DiasEfectivo"`
	FechaOperacion  time.Time `csv:"-"`
	FechaConfirmado time.Time `csv:"-"`

	FueraSistema string `csv:"FueraSistema"`
}

// EsFueraSistema reports whether the operation is tracked outside the
// source system.
func (o Operacion) EsFueraSistema() bool {
	return o.FueraSistema == FueraSistemaSi
}

// AcumuladoDIM is the reconciled output of the accumulated-DIM calculator:
// the operation joined with its payment and sector data plus the computed
// balance and account-status columns.
type AcumuladoDIM struct {
	Operacion

	TipoPago   string          `csv:"TipoPago"`
	MontoPago  decimal.Decimal `csv:"MontoPago"`
	SaldoDeuda decimal.Decimal `csv:"SaldoDeuda"`

	Sector   string `csv:"Sector"`
	GrupoEco string `csv:"GrupoEco"`

	SaldoTotal    decimal.Decimal `csv:"SaldoTotal"`
	SaldoTotalPen decimal.Decimal `csv:"SaldoTotalPen"`
	TipoPagoReal  string          `csv:"TipoPagoReal"`
	EstadoCuenta  string          `csv:"EstadoCuenta"`
	EstadoReal    string          `csv:"EstadoReal"`
}

// Row flattens the record into the column-name → primitive mapping the
// persistence sink consumes.
func (a AcumuladoDIM) Row() map[string]interface{} {
	row := map[string]interface{}{
		"IdLiquidacionCab":             a.IdLiquidacionCab,
		"IdLiquidacionDet":             a.IdLiquidacionDet,
		"CodigoLiquidacion":            a.CodigoLiquidacion,
		"NroDocumento":                 a.NroDocumento,
		"RUCCliente":                   a.RUCCliente,
		"RazonSocialCliente":           a.RazonSocialCliente,
		"RUCPagador":                   a.RUCPagador,
		"RazonSocialPagador":           a.RazonSocialPagador,
		"Moneda":                       a.Moneda,
		"TipoOperacion":                a.TipoOperacion,
		"Ejecutivo":                    a.Ejecutivo,
		"NetoConfirmado":               a.NetoConfirmado.InexactFloat64(),
		"MontoDesembolso":              a.MontoDesembolso.InexactFloat64(),
		"Intereses":                    a.Intereses.InexactFloat64(),
		"GastosContrato":               a.GastosContrato.InexactFloat64(),
		"GastosDiversos":               a.GastosDiversos.InexactFloat64(),
		"ComisionEstructuracion":       a.ComisionEstructuracion.InexactFloat64(),
		"ComisionEstructuracionConIGV": a.ComisionEstructuracionConIGV.InexactFloat64(),
		"TasaNominalMensual":           a.TasaNominalMensual.InexactFloat64(),
		"DiasEfectivo":                 a.DiasEfectivo,
		"FueraSistema":                 a.FueraSistema,
		"TipoPago":                     a.TipoPago,
		"MontoPago":                    a.MontoPago.InexactFloat64(),
		"SaldoDeuda":                   a.SaldoDeuda.InexactFloat64(),
		"Sector":                       a.Sector,
		"GrupoEco":                     a.GrupoEco,
		"SaldoTotal":                   a.SaldoTotal.InexactFloat64(),
		"SaldoTotalPen":                a.SaldoTotalPen.InexactFloat64(),
		"TipoPagoReal":                 a.TipoPagoReal,
		"EstadoCuenta":                 a.EstadoCuenta,
		"EstadoReal":                   a.EstadoReal,
	}
	if !a.FechaOperacion.IsZero() {
		row["FechaOperacion"] = dateutils.ToISODate(a.FechaOperacion)
	} else {
		row["FechaOperacion"] = nil
	}
	if !a.FechaConfirmado.IsZero() {
		row["FechaConfirmado"] = dateutils.ToISODate(a.FechaConfirmado)
	} else {
		row["FechaConfirmado"] = nil
	}
	return row
}
