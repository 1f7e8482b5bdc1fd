package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
)

func registroKPI(mes string, utilidad float64) models.KPI {
	return models.KPI{
		Operacion: models.Operacion{
			CodigoLiquidacion: "LIQ-" + mes,
			Moneda:            "PEN",
			FechaOperacion:    time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		NetoConfirmadoSoles: decimal.NewFromInt(1000),
		TotalIngresosSoles:  decimal.NewFromFloat(utilidad + 50),
		CostosFondoSoles:    decimal.NewFromInt(50),
		Utilidad:            decimal.NewFromFloat(utilidad),
		Mes:                 mes,
	}
}

func TestResumenMensualKPI(t *testing.T) {
	registros := []models.KPI{
		registroKPI("2024-02", 200),
		registroKPI("2024-01", 100),
		registroKPI("2024-01", 150),
	}

	resumen, err := ResumenMensualKPI(registros)
	require.NoError(t, err)
	require.Len(t, resumen, 2)

	// Months come out sorted ascending.
	assert.Equal(t, "2024-01", resumen[0].Mes)
	assert.Equal(t, 2, resumen[0].Operaciones)
	assert.InDelta(t, 250.0, resumen[0].Utilidad, 0.001)
	assert.InDelta(t, 2000.0, resumen[0].NetoConfirmadoSoles, 0.001)

	assert.Equal(t, "2024-02", resumen[1].Mes)
	assert.Equal(t, 1, resumen[1].Operaciones)
	assert.InDelta(t, 200.0, resumen[1].Utilidad, 0.001)
}

func TestResumenMensualKPIVacio(t *testing.T) {
	resumen, err := ResumenMensualKPI(nil)
	require.NoError(t, err)
	assert.Empty(t, resumen)
}

func TestExportResumenCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumen.csv")
	resumen := []ResumenMensual{
		{Mes: "2024-01", Operaciones: 2, Utilidad: 250},
	}

	require.NoError(t, ExportResumenCSV(resumen, path, &logging.MockLogger{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-01")
	assert.Contains(t, string(data), "Mes")
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumen.xlsx")
	resumen := []ResumenMensual{
		{Mes: "2024-01", Operaciones: 2, Utilidad: 250},
	}
	comisiones := []models.Comision{
		{
			Ejecutivo:     "Maria Torres",
			Mes:           "2024-01",
			Tipo:          models.ClasificacionNuevo,
			MontoComision: decimal.NewFromInt(110),
		},
	}

	require.NoError(t, ExportXLSX(resumen, comisiones, path, &logging.MockLogger{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{hojaResumen, hojaComisiones}, f.GetSheetList())

	mes, err := f.GetCellValue(hojaResumen, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", mes)

	ejecutivo, err := f.GetCellValue(hojaComisiones, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Maria Torres", ejecutivo)
}
