// Package kpi handles the profitability command
package kpi

import (
	"context"

	"github.com/spf13/cobra"

	"andescapital/cxc-etl/cmd/root"
)

// Cmd represents the kpi command
var Cmd = &cobra.Command{
	Use:   "kpi",
	Short: "Calcula los indicadores de rentabilidad por operación",
	Long: `Convierte cada operación a soles con el tipo de cambio de su fecha,
calcula ingresos, costos de fondeo y utilidad, y reemplaza la tabla de
indicadores.`,
	Run: kpiFunc,
}

func kpiFunc(cmd *cobra.Command, args []string) {
	fechaCorte, err := root.FechaCorte()
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	processor, _, err := root.NewProcessor()
	if err != nil {
		root.Log.Fatalf("Error inicializando el pipeline: %v", err)
	}

	if err := processor.RunKPI(context.Background(), fechaCorte); err != nil {
		root.Log.Fatalf("Error en la corrida KPI: %v", err)
	}
	root.Log.Info("Corrida KPI completada")
}
