package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andescapital/cxc-etl/internal/models"
	"andescapital/cxc-etl/internal/schema"
)

func crudo(codigo, documento string, monto float64) schema.FueraSistemaCrudo {
	return schema.FueraSistemaCrudo{
		Operacion: models.Operacion{
			CodigoLiquidacion: codigo,
			NroDocumento:      documento,
			MontoDesembolso:   decimal.NewFromFloat(monto),
			FueraSistema:      models.FueraSistemaSi,
		},
	}
}

func TestFueraSistemaIDsSinteticos(t *testing.T) {
	// Two documents under the same settlement share the cab ID but get
	// their own det IDs.
	pen := []schema.FueraSistemaCrudo{
		crudo("LIQ999", "A", 100),
		crudo("LIQ999", "B", 200),
		crudo("LIQ888", "A", 300),
	}

	ops, pagos, devoluciones := NewFueraSistemaCalcular(pen, nil).Calcular()
	require.Len(t, ops, 3)
	require.Len(t, pagos, 3)
	require.Len(t, devoluciones, 3)

	assert.Equal(t, ops[0].IdLiquidacionCab, ops[1].IdLiquidacionCab)
	assert.NotEqual(t, ops[0].IdLiquidacionCab, ops[2].IdLiquidacionCab)
	assert.NotEqual(t, ops[0].IdLiquidacionDet, ops[1].IdLiquidacionDet)

	// Every namespace sits in its own disjoint range above the base.
	for i := range ops {
		assert.GreaterOrEqual(t, ops[i].IdLiquidacionCab, SyntheticIDBase)
		assert.GreaterOrEqual(t, ops[i].IdLiquidacionDet, SyntheticIDBase+100_000)
		assert.Less(t, ops[i].IdLiquidacionDet, SyntheticIDBase+200_000)
		require.NotNil(t, pagos[i].IdLiquidacionPago)
		assert.GreaterOrEqual(t, *pagos[i].IdLiquidacionPago, SyntheticIDBase+200_000)
		assert.Less(t, *pagos[i].IdLiquidacionPago, SyntheticIDBase+300_000)
		require.NotNil(t, devoluciones[i].IdLiquidacionDevolucion)
		assert.GreaterOrEqual(t, *devoluciones[i].IdLiquidacionDevolucion, SyntheticIDBase+300_000)
	}
}

func TestFueraSistemaDedupAntesDeIDs(t *testing.T) {
	// Duplicate pairs keep the LAST occurrence, and IDs are assigned over
	// the surviving rows, so numbering has no gaps.
	pen := []schema.FueraSistemaCrudo{
		crudo("LIQ999", "A", 100),
		crudo("LIQ777", "A", 500),
		crudo("LIQ999", "A", 150),
	}

	ops, _, _ := NewFueraSistemaCalcular(pen, nil).Calcular()
	require.Len(t, ops, 2)

	// Kept rows preserve their original relative order.
	assert.Equal(t, "LIQ777", ops[0].CodigoLiquidacion)
	assert.Equal(t, "LIQ999", ops[1].CodigoLiquidacion)
	assert.True(t, ops[1].MontoDesembolso.Equal(decimal.NewFromInt(150)))

	assert.Equal(t, SyntheticIDBase+100_000, ops[0].IdLiquidacionDet)
	assert.Equal(t, SyntheticIDBase+100_001, ops[1].IdLiquidacionDet)
}

func TestFueraSistemaIdempotente(t *testing.T) {
	pen := []schema.FueraSistemaCrudo{crudo("LIQ999", "A", 100)}
	usd := []schema.FueraSistemaCrudo{crudo("LIQ555", "A", 100)}

	ops1, _, _ := NewFueraSistemaCalcular(pen, usd).Calcular()
	ops2, _, _ := NewFueraSistemaCalcular(pen, usd).Calcular()
	assert.Equal(t, ops1, ops2)
}

func TestFueraSistemaPagosCompaneros(t *testing.T) {
	pen := []schema.FueraSistemaCrudo{crudo("LIQ999", "A", 100)}

	ops, pagos, devoluciones := NewFueraSistemaCalcular(pen, nil).Calcular()
	require.Len(t, pagos, 1)

	// The companion payment settles the full disbursement.
	assert.Equal(t, ops[0].IdLiquidacionDet, pagos[0].IdLiquidacionDet)
	assert.Equal(t, models.TipoPagoFueraSistema, pagos[0].TipoPago)
	assert.True(t, pagos[0].MontoPago.Equal(ops[0].MontoDesembolso))
	assert.True(t, pagos[0].SaldoDeuda.IsZero())

	assert.True(t, devoluciones[0].MontoDevolucion.IsZero())
}
