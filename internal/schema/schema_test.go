package schema

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
)

func TestRawTexto(t *testing.T) {
	raw := Raw{
		"nombre":   "  Maria Torres  ",
		"nulo":     nil,
		"texto":    "null",
		"nan":      math.NaN(),
		"numero":   float64(123),
		"faltante": nil,
	}

	assert.Equal(t, "Maria Torres", raw.Texto("nombre"))
	assert.Equal(t, "", raw.Texto("nulo"))
	assert.Equal(t, "", raw.Texto("texto"))
	assert.Equal(t, "", raw.Texto("nan"))
	assert.Equal(t, "123", raw.Texto("numero"))
	assert.Equal(t, "", raw.Texto("inexistente"))
}

func TestRawDecimalNeverFails(t *testing.T) {
	raw := Raw{
		"float":    1234.56,
		"string":   "S/. 2,500.00",
		"nulo":     nil,
		"nan":      math.NaN(),
		"basura":   "no-numero",
		"negativo": "-10.5",
	}

	assert.True(t, raw.Decimal("float").Equal(decimal.NewFromFloat(1234.56)))
	assert.True(t, raw.Decimal("string").Equal(decimal.NewFromInt(2500)))
	assert.True(t, raw.Decimal("nulo").IsZero())
	assert.True(t, raw.Decimal("nan").IsZero())
	assert.True(t, raw.Decimal("basura").IsZero())
	assert.True(t, raw.Decimal("inexistente").IsZero())
	assert.True(t, raw.Decimal("negativo").Equal(decimal.NewFromFloat(-10.5)))
}

func TestRawDecimalRequerido(t *testing.T) {
	raw := Raw{"ok": "100.50", "nulo": "null", "basura": "xx"}

	v, err := raw.DecimalRequerido("ok")
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromFloat(100.50)))

	v, err = raw.DecimalRequerido("nulo")
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	_, err = raw.DecimalRequerido("basura")
	assert.Error(t, err)
}

func TestRawEnteroTruncaFlotantes(t *testing.T) {
	raw := Raw{
		"exacto":  float64(42),
		"decimal": 42.99,
		"texto":   "42.0",
		"nulo":    nil,
	}

	v, err := raw.Entero("exacto")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	// Truncation toward zero, never rounding.
	v, err = raw.Entero("decimal")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = raw.Entero("texto")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = raw.Entero("nulo")
	assert.Error(t, err)
}

func TestRawEnteroOpcional(t *testing.T) {
	raw := Raw{"ok": float64(7), "basura": "xx", "nulo": nil}

	v := raw.EnteroOpcional("ok")
	require.NotNil(t, v)
	assert.Equal(t, int64(7), *v)

	assert.Nil(t, raw.EnteroOpcional("basura"))
	assert.Nil(t, raw.EnteroOpcional("nulo"))
}

func registroAcumulado() map[string]interface{} {
	return map[string]interface{}{
		"IdLiquidacionCab":  float64(101),
		"IdLiquidacionDet":  float64(501),
		"CodigoLiquidacion": "LIQ2024-0001",
		"NroDocumento":      "F001-123",
		"RUCCliente":        "20100000001",
		"RUCPagador":        "20100000002",
		"Moneda":            "pen",
		"TipoOperacion":     "Factoring",
		"Ejecutivo":         "Maria Torres",
		"NetoConfirmado":    "1,500.00",
		"MontoDesembolso":   1350.0,
		"DiasEfectivo":      30.0,
		"FechaOperacion":    "15/01/2024",
		"FechaConfirmado":   "2024-02-14",
	}
}

func TestValidarAcumulado(t *testing.T) {
	op, err := ValidarAcumulado(Raw(registroAcumulado()))
	require.NoError(t, err)

	assert.Equal(t, int64(101), op.IdLiquidacionCab)
	assert.Equal(t, int64(501), op.IdLiquidacionDet)
	assert.Equal(t, "PEN", op.Moneda)
	assert.True(t, op.NetoConfirmado.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 30, op.DiasEfectivo)
	assert.Equal(t, "2024-01-15", op.FechaOperacion.Format("2006-01-02"))
	assert.True(t, op.Intereses.IsZero())
	assert.Empty(t, op.FueraSistema)
}

func TestValidarAcumuladoCamposObligatorios(t *testing.T) {
	for _, campo := range []string{"IdLiquidacionCab", "IdLiquidacionDet", "CodigoLiquidacion", "FechaOperacion", "FechaConfirmado"} {
		registro := registroAcumulado()
		delete(registro, campo)
		_, err := ValidarAcumulado(Raw(registro))
		assert.Error(t, err, "campo=%s", campo)
	}
}

func TestValidarFueraSistema(t *testing.T) {
	registro := map[string]interface{}{
		"CodigoLiquidacion": "LIQ2024-9001",
		"RUCCliente":        "20100000001",
		"NetoConfirmado":    "800.00",
		"MontoDesembolso":   "750.00",
		"DiasEfectivo":      "45",
		"FechaOperacion":    "01/03/2024",
	}

	fs, err := ValidarFueraSistema("USD")(Raw(registro))
	require.NoError(t, err)

	assert.Equal(t, "USD", fs.Operacion.Moneda)
	assert.Equal(t, models.FueraSistemaSi, fs.Operacion.FueraSistema)
	// FechaConfirmado defaults to the operation date when the sheet omits it.
	assert.Equal(t, fs.Operacion.FechaOperacion, fs.Operacion.FechaConfirmado)
	assert.Nil(t, fs.IdLiquidacionPago)
	assert.Nil(t, fs.IdLiquidacionDevolucion)
}

func TestValidarLoteDescartaInvalidos(t *testing.T) {
	logger := &logging.MockLogger{}

	valido := registroAcumulado()
	invalido := registroAcumulado()
	delete(invalido, "CodigoLiquidacion")

	out := ValidarLote([]map[string]interface{}{valido, invalido, valido}, "acumulado", logger, ValidarAcumulado)

	assert.Len(t, out, 2)
	assert.NotEmpty(t, logger.EntriesByLevel("WARN"))
}

func TestValidarLoteVacioNoEsError(t *testing.T) {
	logger := &logging.MockLogger{}

	invalido := registroAcumulado()
	delete(invalido, "FechaOperacion")

	out := ValidarLote([]map[string]interface{}{invalido}, "acumulado", logger, ValidarAcumulado)

	assert.Empty(t, out)
	assert.NotEmpty(t, logger.EntriesByLevel("WARN"))
}
