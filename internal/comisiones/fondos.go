package comisiones

import (
	"math"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/kpi"
	"andescapital/cxc-etl/internal/models"
)

// TasaFondoPromocional is the annualized rate of the promotional fund's
// compound cost model, which REPLACES the base funding cost entirely.
// ComisionFondoCrecer is the guarantee-program fee applied on top of the
// annualized nominal rate.
var (
	TasaFondoPromocional = 0.08
	ComisionFondoCrecer  = decimal.NewFromFloat(0.08)
)

// FondosCalcular applies the special financing-program cost overrides to
// KPI records before commission calculation.
type FondosCalcular struct {
	garantias   map[string]decimal.Decimal
	promocional map[string]bool
}

// NewFondosCalcular indexes the fund tables by settlement code.
func NewFondosCalcular(crecer []models.FondoCrecer, promocional []models.FondoPromocional) *FondosCalcular {
	c := &FondosCalcular{
		garantias:   make(map[string]decimal.Decimal, len(crecer)),
		promocional: make(map[string]bool, len(promocional)),
	}
	for _, f := range crecer {
		c.garantias[f.CodigoLiquidacion] = f.Garantia
	}
	for _, f := range promocional {
		c.promocional[f.CodigoLiquidacion] = true
	}
	return c
}

// costoCrecer is the guarantee-weighted surcharge for a Fondo Crecer
// settlement: tasaNominalMensual*12 * 8% / 360 * diasEfectivo *
// montoDesembolso * garantia * 1.18 (the fee carries IGV).
func costoCrecer(k models.KPI, garantia decimal.Decimal) decimal.Decimal {
	tasaAnual := k.TasaNominalMensual.Mul(decimal.NewFromInt(12))
	return tasaAnual.
		Mul(ComisionFondoCrecer).
		Div(decimal.NewFromInt(360)).
		Mul(decimal.NewFromInt(int64(k.DiasEfectivo))).
		Mul(k.MontoDesembolso).
		Mul(garantia).
		Mul(kpi.FactorIGV)
}

// Ajustar rewrites the funding cost of one KPI record per its fund
// memberships and recomputes the utility. Records outside both programs
// pass through untouched.
func (c *FondosCalcular) Ajustar(k models.KPI) models.KPI {
	enPromocional := c.promocional[k.CodigoLiquidacion]
	garantia, enCrecer := c.garantias[k.CodigoLiquidacion]

	if !enPromocional && !enCrecer {
		return k
	}

	costos := k.CostosFondo
	if enPromocional {
		// The promotional fund replaces the base cost model outright.
		factor := math.Pow(1+TasaFondoPromocional, float64(k.DiasEfectivo)/365) - 1
		costos = k.MontoDesembolso.Mul(decimal.NewFromFloat(factor))
	}
	if enCrecer {
		costos = costos.Add(costoCrecer(k, garantia))
	}

	k.CostosFondo = costos
	k.CostosFondoSoles = costos.Mul(k.TipoCambioVenta)
	k.Utilidad = k.TotalIngresosSoles.Sub(k.CostosFondoSoles)
	return k
}
