// Package comisiones handles the commission classification command
package comisiones

import (
	"context"

	"github.com/spf13/cobra"

	"andescapital/cxc-etl/cmd/root"
)

// Cmd represents the comisiones command
var Cmd = &cobra.Command{
	Use:   "comisiones",
	Short: "Clasifica y calcula las comisiones de los ejecutivos",
	Long: `Clasifica cada combinación de ejecutivo y cliente/pagador como nueva
o recurrente mes a mes, aplica las promociones y los fondos especiales,
y reemplaza la tabla de comisiones.`,
	Run: comisionesFunc,
}

func comisionesFunc(cmd *cobra.Command, args []string) {
	fechaCorte, err := root.FechaCorte()
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	processor, _, err := root.NewProcessor()
	if err != nil {
		root.Log.Fatalf("Error inicializando el pipeline: %v", err)
	}

	if err := processor.RunComisiones(context.Background(), fechaCorte); err != nil {
		root.Log.Fatalf("Error en la corrida de comisiones: %v", err)
	}
	root.Log.Info("Corrida de comisiones completada")
}
