// Package report builds the monthly management summaries and exports
// them to CSV and XLSX.
package report

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/models"
)

// ResumenMensual is one month's profitability rollup.
type ResumenMensual struct {
	Mes                 string  `csv:"Mes"`
	Operaciones         int     `csv:"Operaciones"`
	NetoConfirmadoSoles float64 `csv:"NetoConfirmadoSoles"`
	TotalIngresosSoles  float64 `csv:"TotalIngresosSoles"`
	CostosFondoSoles    float64 `csv:"CostosFondoSoles"`
	Utilidad            float64 `csv:"Utilidad"`
}

// kpiToDataFrame keeps only the columns the rollup needs.
func kpiToDataFrame(records []models.KPI) dataframe.DataFrame {
	n := len(records)
	mes := make([]string, n)
	neto := make([]float64, n)
	ingresos := make([]float64, n)
	costos := make([]float64, n)
	utilidad := make([]float64, n)

	for i, r := range records {
		mes[i] = r.Mes
		neto[i] = r.NetoConfirmadoSoles.InexactFloat64()
		ingresos[i] = r.TotalIngresosSoles.InexactFloat64()
		costos[i] = r.CostosFondoSoles.InexactFloat64()
		utilidad[i] = r.Utilidad.InexactFloat64()
	}

	return dataframe.New(
		series.New(mes, series.String, "Mes"),
		series.New(neto, series.Float, "NetoConfirmadoSoles"),
		series.New(ingresos, series.Float, "TotalIngresosSoles"),
		series.New(costos, series.Float, "CostosFondoSoles"),
		series.New(utilidad, series.Float, "Utilidad"),
	)
}

// ResumenMensualKPI aggregates the KPI dataset per month, sorted
// ascending by month key.
func ResumenMensualKPI(records []models.KPI) ([]ResumenMensual, error) {
	if len(records) == 0 {
		return nil, nil
	}

	df := kpiToDataFrame(records)
	agregado := df.GroupBy("Mes").Aggregation(
		[]dataframe.AggregationType{
			dataframe.Aggregation_SUM,
			dataframe.Aggregation_SUM,
			dataframe.Aggregation_SUM,
			dataframe.Aggregation_SUM,
		},
		[]string{"NetoConfirmadoSoles", "TotalIngresosSoles", "CostosFondoSoles", "Utilidad"},
	)
	if agregado.Err != nil {
		return nil, fmt.Errorf("report: agregando por mes: %w", agregado.Err)
	}

	conteos := map[string]int{}
	for _, r := range records {
		conteos[r.Mes]++
	}

	out := make([]ResumenMensual, 0, agregado.Nrow())
	for i := 0; i < agregado.Nrow(); i++ {
		fila := agregado.Subset(i)
		mes := fila.Col("Mes").Elem(0).String()
		out = append(out, ResumenMensual{
			Mes:                 mes,
			Operaciones:         conteos[mes],
			NetoConfirmadoSoles: redondear(fila.Col("NetoConfirmadoSoles_SUM").Elem(0).Float()),
			TotalIngresosSoles:  redondear(fila.Col("TotalIngresosSoles_SUM").Elem(0).Float()),
			CostosFondoSoles:    redondear(fila.Col("CostosFondoSoles_SUM").Elem(0).Float()),
			Utilidad:            redondear(fila.Col("Utilidad_SUM").Elem(0).Float()),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Mes < out[j].Mes })
	return out, nil
}

// redondear clamps the float noise out of summed monetary values.
func redondear(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
