// Package export handles the report export command
package export

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"andescapital/cxc-etl/cmd/root"
	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/report"
)

var (
	// Cmd represents the export command
	Cmd = &cobra.Command{
		Use:   "export",
		Short: "Exporta el resumen mensual y las comisiones a CSV o XLSX",
		Long: `Calcula los indicadores y las comisiones sin tocar la base de datos
y los exporta a un archivo. El formato se decide por la extensión del
archivo de salida: .xlsx produce un libro con una hoja por dataset,
cualquier otra extensión produce CSV.`,
		Run: exportFunc,
	}

	outputFile string
)

// Init registers the export command flags.
func Init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "resumen.xlsx",
		"Archivo de salida (.xlsx o .csv)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	fechaCorte, err := root.FechaCorte()
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	processor, _, err := root.NewProcessor()
	if err != nil {
		root.Log.Fatalf("Error inicializando el pipeline: %v", err)
	}
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	ctx := context.Background()
	registros, err := processor.CalcularKPI(ctx, fechaCorte)
	if err != nil {
		root.Log.Fatalf("Error calculando indicadores: %v", err)
	}
	comisiones, err := processor.CalcularComisiones(ctx, fechaCorte)
	if err != nil {
		root.Log.Fatalf("Error calculando comisiones: %v", err)
	}

	resumen, err := report.ResumenMensualKPI(registros)
	if err != nil {
		root.Log.Fatalf("Error armando el resumen mensual: %v", err)
	}

	if strings.HasSuffix(strings.ToLower(outputFile), ".xlsx") {
		err = report.ExportXLSX(resumen, comisiones, outputFile, logger)
	} else {
		err = report.ExportResumenCSV(resumen, outputFile, logger)
	}
	if err != nil {
		root.Log.Fatalf("Error exportando el reporte: %v", err)
	}
	root.Log.Infof("Reporte exportado a %s", outputFile)
}
