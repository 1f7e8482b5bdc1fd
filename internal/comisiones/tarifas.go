package comisiones

import (
	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/catalogos"
	"andescapital/cxc-etl/internal/currencyutils"
	"andescapital/cxc-etl/internal/kpi"
	"andescapital/cxc-etl/internal/models"
)

// Tiered rates for in-house executives, applied to UtilidadTotalSoles.
var (
	TasaNuevoPropio      = decimal.NewFromFloat(0.11)
	TasaNuevoReferido    = decimal.NewFromFloat(0.07)
	TasaListaMesAnterior = decimal.NewFromFloat(0.09)
	TasaBase             = decimal.NewFromFloat(0.06)
)

// Tarifador selects the commission rate and amount for one key-month
// decision.
type Tarifador struct {
	ejecutivos  *catalogos.Ejecutivos
	ventaActual decimal.Decimal
}

// NewTarifador creates the rate selector. ventaActual is the current sell
// rate used by the currency-aware override for special executives.
func NewTarifador(ejecutivos *catalogos.Ejecutivos, ventaActual decimal.Decimal) *Tarifador {
	return &Tarifador{ejecutivos: ejecutivos, ventaActual: ventaActual}
}

// esReferidoPropio reports whether the referral points back at the selling
// executive. Operations without a referral count as the executive's own
// acquisition.
func esReferidoPropio(referencia, ejecutivo string) bool {
	return referencia == "" || referencia == ejecutivo
}

// Tarifa computes (rate, amount) for the operations of one executive/key
// in one month. esNuevo reflects the month's classification;
// enListaAnterior marks keys that classified Nuevo the month before.
func (t *Tarifador) Tarifa(ops []models.KPI, esNuevo, enListaAnterior bool) (decimal.Decimal, decimal.Decimal) {
	if len(ops) == 0 {
		return decimal.Zero, decimal.Zero
	}
	ejecutivo := ops[0].Ejecutivo

	utilidadTotal := decimal.Zero
	estructuracionConIGV := decimal.Zero
	estructuracionConIGVSoles := decimal.Zero
	for _, op := range ops {
		utilidadTotal = utilidadTotal.Add(op.Utilidad)
		estructuracionConIGV = estructuracionConIGV.Add(op.ComisionEstructuracionConIGV)
		monto := op.ComisionEstructuracionConIGV
		if op.Moneda == currencyutils.CurrencyUSD {
			monto = monto.Mul(t.ventaActual)
		}
		estructuracionConIGVSoles = estructuracionConIGVSoles.Add(monto)
	}

	// External partners: fixed personal rate on utility, displaced by the
	// structuring fee when one exists (commission = fee net of IGV).
	if tasaPersonal, ok := t.ejecutivos.TasaExterno(ejecutivo); ok {
		if !estructuracionConIGV.IsZero() {
			base := estructuracionConIGV
			if t.ejecutivos.EsEspecial(ejecutivo) {
				// The special executives settle in soles, so USD fees
				// convert at the current sell rate first.
				base = estructuracionConIGVSoles
			}
			return decimal.Zero, base.Div(kpi.FactorIGV)
		}
		return tasaPersonal, utilidadTotal.Mul(tasaPersonal)
	}

	// In-house tiers, first match wins.
	var tasa decimal.Decimal
	switch {
	case esNuevo && esReferidoPropio(ops[0].Referencia, ejecutivo):
		tasa = TasaNuevoPropio
	case esNuevo:
		tasa = TasaNuevoReferido
	case enListaAnterior:
		tasa = TasaListaMesAnterior
	default:
		tasa = TasaBase
	}
	return tasa, utilidadTotal.Mul(tasa)
}
