// Package cxc handles the accounts-receivable reconciliation command
package cxc

import (
	"context"

	"github.com/spf13/cobra"

	"andescapital/cxc-etl/cmd/root"
)

// Cmd represents the cxc command
var Cmd = &cobra.Command{
	Use:   "cxc",
	Short: "Reconcilia el acumulado de cuentas por cobrar",
	Long: `Reconcilia las operaciones del sistema y las hojas fuera de sistema
con sus pagos y devoluciones, deriva saldos y estados de cuenta, y
reemplaza las tablas de cuentas por cobrar.`,
	Run: cxcFunc,
}

func cxcFunc(cmd *cobra.Command, args []string) {
	fechaCorte, err := root.FechaCorte()
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}

	processor, _, err := root.NewProcessor()
	if err != nil {
		root.Log.Fatalf("Error inicializando el pipeline: %v", err)
	}

	if err := processor.RunCXC(context.Background(), fechaCorte); err != nil {
		root.Log.Fatalf("Error en la corrida CXC: %v", err)
	}
	root.Log.Info("Corrida CXC completada")
}
