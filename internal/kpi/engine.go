package kpi

import (
	"math"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/currencyutils"
	"andescapital/cxc-etl/internal/dateutils"
	"andescapital/cxc-etl/internal/models"
	"andescapital/cxc-etl/internal/reconcile"
)

// Annual cost-of-funds rates by currency. The funding cost is compound
// interest over the effective days, not simple interest.
var (
	TasaFondoPEN = 0.14
	TasaFondoUSD = 0.12
)

// FactorIGV nets Peru's 18% value-added tax out of gross amounts.
var FactorIGV = decimal.NewFromFloat(1.18)

// CalculationEngine turns one operation plus its applicable exchange rate
// into the derived profitability fields.
type CalculationEngine struct {
	tipoCambio *reconcile.TipoCambioCalcular
}

// NewCalculationEngine creates the engine over the historical rates.
func NewCalculationEngine(tipoCambio *reconcile.TipoCambioCalcular) *CalculationEngine {
	return &CalculationEngine{tipoCambio: tipoCambio}
}

// CostosFondo computes the compound cost of funds:
// ((1+rate)^(dias/365) - 1) * montoDesembolso.
func CostosFondo(rate float64, diasEfectivo int, montoDesembolso decimal.Decimal) decimal.Decimal {
	factor := math.Pow(1+rate, float64(diasEfectivo)/365) - 1
	return montoDesembolso.Mul(decimal.NewFromFloat(factor))
}

// tasaFondo returns the annual cost-of-funds rate for a currency.
func tasaFondo(moneda string) float64 {
	if moneda == currencyutils.CurrencyUSD {
		return TasaFondoUSD
	}
	return TasaFondoPEN
}

// Derivar computes the KPI record for one operation. The soles factor is
// the sell rate on the operation date for USD, 1 for PEN.
func (e *CalculationEngine) Derivar(op models.Operacion) models.KPI {
	k := models.KPI{Operacion: op}

	factor := decimal.NewFromInt(1)
	if op.Moneda == currencyutils.CurrencyUSD {
		factor = e.tipoCambio.VentaPara(op.FechaOperacion)
	}
	k.TipoCambioVenta = factor

	k.NetoConfirmadoSoles = op.NetoConfirmado.Mul(factor)
	k.MontoDesembolsoSoles = op.MontoDesembolso.Mul(factor)

	// Income: interest plus the structuring commission net of IGV plus
	// the contract and sundry charges.
	estructuracionNeta := op.ComisionEstructuracion
	if estructuracionNeta.IsZero() && !op.ComisionEstructuracionConIGV.IsZero() {
		estructuracionNeta = op.ComisionEstructuracionConIGV.Div(FactorIGV)
	}
	k.TotalIngresos = op.Intereses.
		Add(estructuracionNeta).
		Add(op.GastosContrato).
		Add(op.GastosDiversos)
	k.TotalIngresosSoles = k.TotalIngresos.Mul(factor)

	k.CostosFondo = CostosFondo(tasaFondo(op.Moneda), op.DiasEfectivo, op.MontoDesembolso)
	k.CostosFondoSoles = k.CostosFondo.Mul(factor)

	k.Utilidad = k.TotalIngresosSoles.Sub(k.CostosFondoSoles)

	k.Mes = dateutils.MonthKey(op.FechaOperacion)
	k.MesSemana = dateutils.MesSemana(op.FechaOperacion)

	return k
}
