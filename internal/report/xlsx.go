package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
)

const (
	hojaResumen    = "Resumen"
	hojaComisiones = "Comisiones"
)

// ExportXLSX writes the monthly rollup and the commission decisions into
// one workbook, a sheet per dataset.
func ExportXLSX(resumen []ResumenMensual, comisiones []models.Comision, path string, logger logging.Logger) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", hojaResumen)
	if err := escribirResumen(f, resumen); err != nil {
		return err
	}

	if _, err := f.NewSheet(hojaComisiones); err != nil {
		return fmt.Errorf("report: creando hoja %s: %w", hojaComisiones, err)
	}
	if err := escribirComisiones(f, comisiones); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		logger.WithError(err).Error("fallo la exportación XLSX",
			logging.F("archivo", path))
		return fmt.Errorf("report: guardando %s: %w", path, err)
	}

	logger.Info("archivo XLSX exportado",
		logging.F("archivo", path),
		logging.F("meses", len(resumen)),
		logging.F("comisiones", len(comisiones)))
	return nil
}

func escribirResumen(f *excelize.File, resumen []ResumenMensual) error {
	encabezados := []interface{}{
		"Mes", "Operaciones", "NetoConfirmadoSoles",
		"TotalIngresosSoles", "CostosFondoSoles", "Utilidad",
	}
	if err := escribirFila(f, hojaResumen, 1, encabezados); err != nil {
		return err
	}
	for i, r := range resumen {
		fila := []interface{}{
			r.Mes, r.Operaciones, r.NetoConfirmadoSoles,
			r.TotalIngresosSoles, r.CostosFondoSoles, r.Utilidad,
		}
		if err := escribirFila(f, hojaResumen, i+2, fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirComisiones(f *excelize.File, records []models.Comision) error {
	encabezados := []interface{}{
		"Ejecutivo", "Mes", "TipoOperacion", "RUCCliente", "RUCPagador",
		"Tipo", "Detalle", "UtilidadTotalSoles", "Tasa", "MontoComision",
	}
	if err := escribirFila(f, hojaComisiones, 1, encabezados); err != nil {
		return err
	}
	for i, c := range records {
		fila := []interface{}{
			c.Ejecutivo, c.Mes, c.TipoOperacion, c.RUCCliente, c.RUCPagador,
			c.Tipo, c.Detalle,
			c.UtilidadTotalSoles.InexactFloat64(),
			c.Tasa.InexactFloat64(),
			c.MontoComision.InexactFloat64(),
		}
		if err := escribirFila(f, hojaComisiones, i+2, fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirFila(f *excelize.File, hoja string, numero int, valores []interface{}) error {
	celda, err := excelize.CoordinatesToCellName(1, numero)
	if err != nil {
		return fmt.Errorf("report: fila %d de %s: %w", numero, hoja, err)
	}
	if err := f.SetSheetRow(hoja, celda, &valores); err != nil {
		return fmt.Errorf("report: fila %d de %s: %w", numero, hoja, err)
	}
	return nil
}
