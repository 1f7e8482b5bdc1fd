package reconcile

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"andescapital/cxc-etl/internal/dateutils"
	"andescapital/cxc-etl/internal/models"
)

// acumuladoToDataFrame builds the tabular form of the reconciled dataset.
// Monetary columns are float series; identifiers stay as integers.
func acumuladoToDataFrame(records []models.AcumuladoDIM) dataframe.DataFrame {
	n := len(records)

	cab := make([]int, n)
	det := make([]int, n)
	codigo := make([]string, n)
	documento := make([]string, n)
	rucCliente := make([]string, n)
	rucPagador := make([]string, n)
	moneda := make([]string, n)
	fechaConfirmado := make([]string, n)
	neto := make([]float64, n)
	montoPago := make([]float64, n)
	saldoDeuda := make([]float64, n)
	saldoTotal := make([]float64, n)
	saldoTotalPen := make([]float64, n)
	tipoPago := make([]string, n)
	tipoPagoReal := make([]string, n)
	sector := make([]string, n)
	grupoEco := make([]string, n)
	estadoCuenta := make([]string, n)
	estadoReal := make([]string, n)
	fueraSistema := make([]string, n)

	for i, r := range records {
		cab[i] = int(r.IdLiquidacionCab)
		det[i] = int(r.IdLiquidacionDet)
		codigo[i] = r.CodigoLiquidacion
		documento[i] = r.NroDocumento
		rucCliente[i] = r.RUCCliente
		rucPagador[i] = r.RUCPagador
		moneda[i] = r.Moneda
		fechaConfirmado[i] = dateutils.ToISODate(r.FechaConfirmado)
		neto[i] = r.NetoConfirmado.InexactFloat64()
		montoPago[i] = r.MontoPago.InexactFloat64()
		saldoDeuda[i] = r.SaldoDeuda.InexactFloat64()
		saldoTotal[i] = r.SaldoTotal.InexactFloat64()
		saldoTotalPen[i] = r.SaldoTotalPen.InexactFloat64()
		tipoPago[i] = r.TipoPago
		tipoPagoReal[i] = r.TipoPagoReal
		sector[i] = r.Sector
		grupoEco[i] = r.GrupoEco
		estadoCuenta[i] = r.EstadoCuenta
		estadoReal[i] = r.EstadoReal
		fueraSistema[i] = r.FueraSistema
	}

	return dataframe.New(
		series.New(cab, series.Int, "IdLiquidacionCab"),
		series.New(det, series.Int, "IdLiquidacionDet"),
		series.New(codigo, series.String, "CodigoLiquidacion"),
		series.New(documento, series.String, "NroDocumento"),
		series.New(rucCliente, series.String, "RUCCliente"),
		series.New(rucPagador, series.String, "RUCPagador"),
		series.New(moneda, series.String, "Moneda"),
		series.New(fechaConfirmado, series.String, "FechaConfirmado"),
		series.New(neto, series.Float, "NetoConfirmado"),
		series.New(montoPago, series.Float, "MontoPago"),
		series.New(saldoDeuda, series.Float, "SaldoDeuda"),
		series.New(saldoTotal, series.Float, "SaldoTotal"),
		series.New(saldoTotalPen, series.Float, "SaldoTotalPen"),
		series.New(tipoPago, series.String, "TipoPago"),
		series.New(tipoPagoReal, series.String, "TipoPagoReal"),
		series.New(sector, series.String, "Sector"),
		series.New(grupoEco, series.String, "GrupoEco"),
		series.New(estadoCuenta, series.String, "EstadoCuenta"),
		series.New(estadoReal, series.String, "EstadoReal"),
		series.New(fueraSistema, series.String, "FueraSistema"),
	)
}
