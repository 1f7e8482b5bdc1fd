package kpi

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"andescapital/cxc-etl/internal/catalogos"
	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
	"andescapital/cxc-etl/internal/reconcile"
)

// KPICalcular merges the in-system operation stream with the curated
// out-of-system records and derives the profitability metrics for each.
type KPICalcular struct {
	sistema      []models.Operacion
	fueraSistema []models.Operacion
	referidos    []models.Referido
	ejecutivos   *catalogos.Ejecutivos
	engine       *CalculationEngine
	resolver     NameResolver
	logger       logging.Logger
}

// NewKPICalcular wires the KPI inputs. A nil resolver falls back to the
// fuzzy implementation.
func NewKPICalcular(
	sistema, fueraSistema []models.Operacion,
	referidos []models.Referido,
	ejecutivos *catalogos.Ejecutivos,
	tipoCambio *reconcile.TipoCambioCalcular,
	resolver NameResolver,
	logger logging.Logger,
) *KPICalcular {
	if resolver == nil {
		resolver = FuzzyResolver{}
	}
	return &KPICalcular{
		sistema:      sistema,
		fueraSistema: fueraSistema,
		referidos:    referidos,
		ejecutivos:   ejecutivos,
		engine:       NewCalculationEngine(tipoCambio),
		resolver:     resolver,
		logger:       logger,
	}
}

// Calcular produces the KPI dataset. Settlement codes present in both
// streams are dropped from the in-system stream first: the out-of-system
// sheet is manually curated and authoritative for those codes.
func (c *KPICalcular) Calcular() ([]models.KPI, error) {
	if c.engine == nil || c.ejecutivos == nil {
		return nil, fmt.Errorf("kpi: faltan datasets de entrada")
	}

	canonical := c.ejecutivos.Nombres()

	fueraCodigos := make(map[string]bool, len(c.fueraSistema))
	for _, op := range c.fueraSistema {
		fueraCodigos[op.CodigoLiquidacion] = true
	}

	merged := make([]models.Operacion, 0, len(c.sistema)+len(c.fueraSistema))
	dropped := 0
	for _, op := range c.sistema {
		if fueraCodigos[op.CodigoLiquidacion] {
			dropped++
			continue
		}
		merged = append(merged, op)
	}
	if dropped > 0 {
		c.logger.Info("operaciones del sistema reemplazadas por fuera de sistema",
			logging.F("dropped", dropped))
	}

	// Out-of-system executive names come from free-typed sheet cells and
	// get reconciled against the canonical table before merging.
	for _, op := range c.fueraSistema {
		op.Ejecutivo = c.resolver.Resolve(op.Ejecutivo, canonical)
		merged = append(merged, op)
	}

	referencias := make(map[string]string, len(c.referidos))
	for _, r := range c.referidos {
		referencias[r.CodigoLiquidacion] = c.resolver.Resolve(r.Referencia, canonical)
	}

	out := make([]models.KPI, 0, len(merged))
	for _, op := range merged {
		k := c.engine.Derivar(op)
		k.Referencia = referencias[op.CodigoLiquidacion]
		out = append(out, k)
	}

	return out, nil
}

// CalcularDF returns the KPI dataset in tabular form.
func (c *KPICalcular) CalcularDF() (dataframe.DataFrame, error) {
	records, err := c.Calcular()
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	n := len(records)
	codigo := make([]string, n)
	ejecutivo := make([]string, n)
	referencia := make([]string, n)
	moneda := make([]string, n)
	mes := make([]string, n)
	mesSemana := make([]string, n)
	ingresos := make([]float64, n)
	ingresosSoles := make([]float64, n)
	costos := make([]float64, n)
	costosSoles := make([]float64, n)
	utilidad := make([]float64, n)

	for i, k := range records {
		codigo[i] = k.CodigoLiquidacion
		ejecutivo[i] = k.Ejecutivo
		referencia[i] = k.Referencia
		moneda[i] = k.Moneda
		mes[i] = k.Mes
		mesSemana[i] = k.MesSemana
		ingresos[i] = k.TotalIngresos.InexactFloat64()
		ingresosSoles[i] = k.TotalIngresosSoles.InexactFloat64()
		costos[i] = k.CostosFondo.InexactFloat64()
		costosSoles[i] = k.CostosFondoSoles.InexactFloat64()
		utilidad[i] = k.Utilidad.InexactFloat64()
	}

	return dataframe.New(
		series.New(codigo, series.String, "CodigoLiquidacion"),
		series.New(ejecutivo, series.String, "Ejecutivo"),
		series.New(referencia, series.String, "Referencia"),
		series.New(moneda, series.String, "Moneda"),
		series.New(mes, series.String, "Mes"),
		series.New(mesSemana, series.String, "MesSemana"),
		series.New(ingresos, series.Float, "TotalIngresos"),
		series.New(ingresosSoles, series.Float, "TotalIngresosSoles"),
		series.New(costos, series.Float, "CostosFondo"),
		series.New(costosSoles, series.Float, "CostosFondoSoles"),
		series.New(utilidad, series.Float, "Utilidad"),
	), nil
}
