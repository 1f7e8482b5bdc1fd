package models

import (
	"github.com/shopspring/decimal"
)

// KPI is one operation enriched with the profitability metrics and the
// Spanish-locale month/week breakdown. It is the output unit of the KPI
// engine and the input of the commission engine.
type KPI struct {
	Operacion

	// TipoCambioVenta is the sell rate applied to USD amounts; 1 for PEN.
	TipoCambioVenta decimal.Decimal `csv:"TipoCambioVenta"`

	NetoConfirmadoSoles  decimal.Decimal `csv:"NetoConfirmadoSoles"`
	MontoDesembolsoSoles decimal.Decimal `csv:"MontoDesembolsoSoles"`

	TotalIngresos      decimal.Decimal `csv:"TotalIngresos"`
	TotalIngresosSoles decimal.Decimal `csv:"TotalIngresosSoles"`
	CostosFondo        decimal.Decimal `csv:"CostosFondo"`
	CostosFondoSoles   decimal.Decimal `csv:"CostosFondoSoles"`
	Utilidad           decimal.Decimal `csv:"Utilidad"`

	Mes       string `csv:"Mes"`
	MesSemana string `csv:"MesSemana"`

	// Referencia is the referring executive after name reconciliation,
	// empty when the settlement has no referral.
	Referencia string `csv:"Referencia"`
}

// Row flattens the KPI record for the persistence sink.
func (k KPI) Row() map[string]interface{} {
	row := map[string]interface{}{
		"IdLiquidacionCab":     k.IdLiquidacionCab,
		"IdLiquidacionDet":     k.IdLiquidacionDet,
		"CodigoLiquidacion":    k.CodigoLiquidacion,
		"NroDocumento":         k.NroDocumento,
		"RUCCliente":           k.RUCCliente,
		"RazonSocialCliente":   k.RazonSocialCliente,
		"RUCPagador":           k.RUCPagador,
		"RazonSocialPagador":   k.RazonSocialPagador,
		"Moneda":               k.Moneda,
		"TipoOperacion":        k.TipoOperacion,
		"Ejecutivo":            k.Ejecutivo,
		"Referencia":           k.Referencia,
		"FueraSistema":         k.FueraSistema,
		"DiasEfectivo":         k.DiasEfectivo,
		"TipoCambioVenta":      k.TipoCambioVenta.InexactFloat64(),
		"NetoConfirmado":       k.NetoConfirmado.InexactFloat64(),
		"NetoConfirmadoSoles":  k.NetoConfirmadoSoles.InexactFloat64(),
		"MontoDesembolso":      k.MontoDesembolso.InexactFloat64(),
		"MontoDesembolsoSoles": k.MontoDesembolsoSoles.InexactFloat64(),
		"TotalIngresos":        k.TotalIngresos.InexactFloat64(),
		"TotalIngresosSoles":   k.TotalIngresosSoles.InexactFloat64(),
		"CostosFondo":          k.CostosFondo.InexactFloat64(),
		"CostosFondoSoles":     k.CostosFondoSoles.InexactFloat64(),
		"Utilidad":             k.Utilidad.InexactFloat64(),
		"Mes":                  k.Mes,
		"MesSemana":            k.MesSemana,
	}
	if !k.FechaOperacion.IsZero() {
		row["FechaOperacion"] = k.FechaOperacion.Format("2006-01-02")
	} else {
		row["FechaOperacion"] = nil
	}
	return row
}
