// Package run handles the full-pipeline command
package run

import (
	"context"

	"github.com/spf13/cobra"

	"andescapital/cxc-etl/cmd/root"
)

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run",
	Short: "Ejecuta las tres etapas: cxc, kpi y comisiones",
	Run:   runFunc,
}

func runFunc(cmd *cobra.Command, args []string) {
	fechaCorte, err := root.FechaCorte()
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	processor, _, err := root.NewProcessor()
	if err != nil {
		root.Log.Fatalf("Error inicializando el pipeline: %v", err)
	}

	if err := processor.Run(context.Background(), fechaCorte); err != nil {
		root.Log.Fatalf("Error en la corrida completa: %v", err)
	}
}
