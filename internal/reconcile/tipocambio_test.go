package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tasa(y int, m time.Month, d int, venta float64) models.TipoCambio {
	return models.TipoCambio{
		TipoCambioFecha:  fecha(y, m, d),
		TipoCambioCompra: decimal.NewFromFloat(venta - 0.01),
		TipoCambioVenta:  decimal.NewFromFloat(venta),
	}
}

func TestVentaParaUsaUltimaTasaVigente(t *testing.T) {
	calc := NewTipoCambioCalcular([]models.TipoCambio{
		tasa(2024, time.January, 10, 3.75),
		tasa(2024, time.January, 5, 3.70),
		tasa(2024, time.January, 20, 3.80),
	}, decimal.Zero, &logging.MockLogger{})

	tests := []struct {
		name     string
		fecha    time.Time
		expected float64
	}{
		{"Exact match", fecha(2024, time.January, 10), 3.75},
		{"Between rows resolves backward", fecha(2024, time.January, 15), 3.75},
		{"After last row", fecha(2024, time.February, 1), 3.80},
		{"On the first row", fecha(2024, time.January, 5), 3.70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.VentaPara(tt.fecha)
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.expected)),
				"got %s", got)
		})
	}
}

func TestVentaParaSinTasaUsaFallback(t *testing.T) {
	logger := &logging.MockLogger{}
	calc := NewTipoCambioCalcular([]models.TipoCambio{
		tasa(2024, time.January, 10, 3.75),
	}, decimal.NewFromFloat(3.5), logger)

	got := calc.VentaPara(fecha(2024, time.January, 1))
	assert.True(t, got.Equal(decimal.NewFromFloat(3.5)))
	assert.NotEmpty(t, logger.EntriesByLevel("WARN"))
}

func TestVentaParaSinDatosUsaConstante(t *testing.T) {
	calc := NewTipoCambioCalcular(nil, decimal.Zero, &logging.MockLogger{})
	got := calc.VentaPara(fecha(2024, time.June, 1))
	assert.True(t, got.Equal(FallbackTipoCambio))
}

func TestCalcularOrdenaAscendente(t *testing.T) {
	calc := NewTipoCambioCalcular([]models.TipoCambio{
		tasa(2024, time.March, 1, 3.9),
		tasa(2024, time.January, 1, 3.7),
	}, decimal.Zero, &logging.MockLogger{})

	rates := calc.Calcular()
	assert.True(t, rates[0].TipoCambioFecha.Before(rates[1].TipoCambioFecha))
}
