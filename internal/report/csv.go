package report

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
)

// ExportResumenCSV writes the monthly rollup to a CSV file.
func ExportResumenCSV(resumen []ResumenMensual, path string, logger logging.Logger) error {
	return exportCSV(resumen, path, "resumen", len(resumen), logger)
}

// ExportComisionesCSV writes the commission decisions to a CSV file.
func ExportComisionesCSV(records []models.Comision, path string, logger logging.Logger) error {
	return exportCSV(records, path, "comisiones", len(records), logger)
}

// ExportKPICSV writes the full profitability dataset to a CSV file.
func ExportKPICSV(records []models.KPI, path string, logger logging.Logger) error {
	return exportCSV(records, path, "kpi", len(records), logger)
}

func exportCSV(records interface{}, path, kind string, count int, logger logging.Logger) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: creando %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(records, file); err != nil {
		logger.WithError(err).Error("fallo la exportación CSV",
			logging.F("archivo", path))
		return fmt.Errorf("report: escribiendo %s: %w", path, err)
	}

	logger.Info("archivo CSV exportado",
		logging.F("archivo", path),
		logging.F("dataset", kind),
		logging.F("filas", count))
	return nil
}
