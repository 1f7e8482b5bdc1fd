package main

import (
	"fmt"
	"os"

	"andescapital/cxc-etl/cmd/comisiones"
	"andescapital/cxc-etl/cmd/cxc"
	"andescapital/cxc-etl/cmd/export"
	"andescapital/cxc-etl/cmd/kpi"
	"andescapital/cxc-etl/cmd/root"
	"andescapital/cxc-etl/cmd/run"
)

func init() {
	root.Init()
	export.Init()

	root.Cmd.AddCommand(cxc.Cmd)
	root.Cmd.AddCommand(kpi.Cmd)
	root.Cmd.AddCommand(comisiones.Cmd)
	root.Cmd.AddCommand(run.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
