package comisiones

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"andescapital/cxc-etl/internal/models"
)

func kpiConCostos() models.KPI {
	return models.KPI{
		Operacion: models.Operacion{
			CodigoLiquidacion:  "LIQ1",
			Moneda:             "PEN",
			MontoDesembolso:    decimal.NewFromInt(10000),
			TasaNominalMensual: decimal.NewFromFloat(0.015),
			DiasEfectivo:       365,
		},
		TipoCambioVenta:    decimal.NewFromInt(1),
		TotalIngresosSoles: decimal.NewFromInt(500),
		CostosFondo:        decimal.NewFromInt(200),
		CostosFondoSoles:   decimal.NewFromInt(200),
		Utilidad:           decimal.NewFromInt(300),
	}
}

func TestAjustarSinFondosNoTocaNada(t *testing.T) {
	calc := NewFondosCalcular(nil, nil)
	k := kpiConCostos()
	assert.Equal(t, k, calc.Ajustar(k))
}

func TestAjustarFondoPromocionalReemplazaCosto(t *testing.T) {
	calc := NewFondosCalcular(nil, []models.FondoPromocional{{CodigoLiquidacion: "LIQ1"}})

	k := calc.Ajustar(kpiConCostos())

	// The promotional fund replaces the cost model outright with 8%
	// compound: (1.08^1 - 1) * 10000 = 800.
	assert.InDelta(t, 800.0, k.CostosFondo.InexactFloat64(), 0.01)
	assert.InDelta(t, 500.0-800.0, k.Utilidad.InexactFloat64(), 0.01)
}

func TestAjustarFondoCrecerSumaGarantia(t *testing.T) {
	calc := NewFondosCalcular([]models.FondoCrecer{
		{CodigoLiquidacion: "LIQ1", Garantia: decimal.NewFromFloat(0.75)},
	}, nil)

	k := calc.Ajustar(kpiConCostos())

	// The guarantee fee adds on top of the base cost:
	// 0.015*12 * 0.08 / 360 * 365 * 10000 * 0.75 * 1.18 = 129.21.
	assert.InDelta(t, 200.0+129.21, k.CostosFondo.InexactFloat64(), 0.01)
	assert.InDelta(t, 500.0-329.21, k.Utilidad.InexactFloat64(), 0.01)
}

func TestAjustarAmbosFondos(t *testing.T) {
	calc := NewFondosCalcular(
		[]models.FondoCrecer{{CodigoLiquidacion: "LIQ1", Garantia: decimal.NewFromFloat(0.75)}},
		[]models.FondoPromocional{{CodigoLiquidacion: "LIQ1"}},
	)

	k := calc.Ajustar(kpiConCostos())

	// Replacement first, then the guarantee surcharge on top.
	assert.InDelta(t, 800.0+129.21, k.CostosFondo.InexactFloat64(), 0.01)
}

func TestAjustarConvierteASoles(t *testing.T) {
	calc := NewFondosCalcular(nil, []models.FondoPromocional{{CodigoLiquidacion: "LIQ1"}})

	k := kpiConCostos()
	k.Moneda = "USD"
	k.TipoCambioVenta = decimal.NewFromFloat(3.75)
	k = calc.Ajustar(k)

	assert.InDelta(t, 800.0*3.75, k.CostosFondoSoles.InexactFloat64(), 0.01)
	assert.InDelta(t, 500.0-3000.0, k.Utilidad.InexactFloat64(), 0.01)
}
