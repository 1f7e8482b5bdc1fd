// Package etl orchestrates the full pipeline: fetch the webservice and
// spreadsheet sources, validate row by row, run the reconciliation and
// profitability calculations, and replace the target tables.
package etl

import (
	"context"
	"time"

	"andescapital/cxc-etl/internal/catalogos"
	"andescapital/cxc-etl/internal/comisiones"
	"andescapital/cxc-etl/internal/kpi"
	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
	"andescapital/cxc-etl/internal/reconcile"
	"andescapital/cxc-etl/internal/schema"
	"andescapital/cxc-etl/internal/store"
)

// WebserviceSource is the authenticated back-office API.
type WebserviceSource interface {
	ObtenerAcumulado(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerPagos(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerDevoluciones(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerTipoCambio(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerKPI(ctx context.Context) ([]map[string]interface{}, error)
}

// SheetSource is the set of spreadsheet-backed endpoints.
type SheetSource interface {
	ObtenerFueraSistemaPEN(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerFueraSistemaUSD(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerSectorPagadores(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerFondoCrecer(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerFondoPromocional(ctx context.Context) ([]map[string]interface{}, error)
	ObtenerReferidos(ctx context.Context) ([]map[string]interface{}, error)
}

// TableSink persists a full dataset, replacing previous contents.
type TableSink interface {
	DeleteAndBulkInsertChunked(ctx context.Context, tabla string, rows []map[string]interface{}) error
}

// Processor runs the pipeline end to end.
type Processor struct {
	webservice WebserviceSource
	sheets     SheetSource
	sink       TableSink
	codigos    *catalogos.Codigos
	ejecutivos *catalogos.Ejecutivos
	fallback   float64
	logger     logging.Logger
}

// NewProcessor wires the pipeline. sink may be nil for report-only runs;
// persistence steps are skipped then.
func NewProcessor(
	webservice WebserviceSource,
	sheets SheetSource,
	sink TableSink,
	codigos *catalogos.Codigos,
	ejecutivos *catalogos.Ejecutivos,
	tipoCambioFallback float64,
	logger logging.Logger,
) *Processor {
	return &Processor{
		webservice: webservice,
		sheets:     sheets,
		sink:       sink,
		codigos:    codigos,
		ejecutivos: ejecutivos,
		fallback:   tipoCambioFallback,
		logger:     logger,
	}
}

// fuentes holds the validated inputs shared by the calculation stages.
type fuentes struct {
	fueraSistemaPEN []schema.FueraSistemaCrudo
	fueraSistemaUSD []schema.FueraSistemaCrudo
	tipoCambio      *reconcile.TipoCambioCalcular
	sector          *reconcile.SectorCalcular
}

// cargarFuentes fetches the inputs every stage depends on. Exchange
// rates and sector mappings degrade to their defaults when their source
// is down; the out-of-system sheets are authoritative data and their
// failure aborts the run.
func (p *Processor) cargarFuentes(ctx context.Context) (*fuentes, error) {
	pen, err := p.sheets.ObtenerFueraSistemaPEN(ctx)
	if err != nil {
		return nil, fallo(PasoFetch, "fuera_sistema_pen", err)
	}
	usd, err := p.sheets.ObtenerFueraSistemaUSD(ctx)
	if err != nil {
		return nil, fallo(PasoFetch, "fuera_sistema_usd", err)
	}

	var tiposCambio []models.TipoCambio
	if raws, err := p.webservice.ObtenerTipoCambio(ctx); err != nil {
		p.logger.WithError(err).Warn("tipo de cambio no disponible, se usa la tasa de respaldo")
	} else {
		tiposCambio = schema.ValidarLote(raws, "tipo_cambio", p.logger, schema.ValidarTipoCambio)
	}

	var sectores []models.SectorPagador
	if raws, err := p.sheets.ObtenerSectorPagadores(ctx); err != nil {
		p.logger.WithError(err).Warn("sectores no disponibles, los pagadores quedan sin clasificar")
	} else {
		sectores = schema.ValidarLote(raws, "sector_pagadores", p.logger, schema.ValidarSector)
	}

	return &fuentes{
		fueraSistemaPEN: schema.ValidarLote(pen, "fuera_sistema_pen", p.logger, schema.ValidarFueraSistema("PEN")),
		fueraSistemaUSD: schema.ValidarLote(usd, "fuera_sistema_usd", p.logger, schema.ValidarFueraSistema("USD")),
		tipoCambio:      reconcile.NewTipoCambioCalcular(tiposCambio, decimalFromFloat(p.fallback), p.logger),
		sector:          reconcile.NewSectorCalcular(sectores),
	}, nil
}

// CalcularCXC produces the reconciled accounts-receivable datasets.
func (p *Processor) CalcularCXC(ctx context.Context, fechaCorte time.Time) ([]models.AcumuladoDIM, []models.Pago, []models.Devolucion, error) {
	f, err := p.cargarFuentes(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	rawsAcumulado, err := p.webservice.ObtenerAcumulado(ctx)
	if err != nil {
		return nil, nil, nil, fallo(PasoFetch, "acumulado", err)
	}
	rawsPagos, err := p.webservice.ObtenerPagos(ctx)
	if err != nil {
		return nil, nil, nil, fallo(PasoFetch, "pagos", err)
	}
	rawsDevoluciones, err := p.webservice.ObtenerDevoluciones(ctx)
	if err != nil {
		return nil, nil, nil, fallo(PasoFetch, "devoluciones", err)
	}

	operaciones := schema.ValidarLote(rawsAcumulado, "acumulado", p.logger, schema.ValidarAcumulado)
	pagosSistema := schema.ValidarLote(rawsPagos, "pagos", p.logger, schema.ValidarPago)
	devolucionesSistema := schema.ValidarLote(rawsDevoluciones, "devoluciones", p.logger, schema.ValidarDevolucion)

	fueraSistema := reconcile.NewFueraSistemaCalcular(f.fueraSistemaPEN, f.fueraSistemaUSD)
	opsFS, pagosFS, devolucionesFS := fueraSistema.Calcular()

	pagos := reconcile.NewPagosCalcular(pagosSistema, pagosFS)
	devoluciones := reconcile.NewDevolucionesCalcular(devolucionesSistema, devolucionesFS)

	acumulado, err := reconcile.NewAcumuladoDIMCalcular(
		append(operaciones, opsFS...),
		pagos, f.sector, f.tipoCambio, p.codigos, fechaCorte,
	).Calcular()
	if err != nil {
		return nil, nil, nil, fallo(PasoCalcular, "acumulado_dim", err)
	}

	return acumulado, pagos.Calcular(), devoluciones.Calcular(), nil
}

// CalcularKPI produces the profitability dataset.
func (p *Processor) CalcularKPI(ctx context.Context, fechaCorte time.Time) ([]models.KPI, error) {
	registros, _, err := p.calcularKPI(ctx, fechaCorte)
	return registros, err
}

func (p *Processor) calcularKPI(ctx context.Context, fechaCorte time.Time) ([]models.KPI, *fuentes, error) {
	f, err := p.cargarFuentes(ctx)
	if err != nil {
		return nil, nil, err
	}

	rawsKPI, err := p.webservice.ObtenerKPI(ctx)
	if err != nil {
		return nil, nil, fallo(PasoFetch, "kpi", err)
	}
	rawsReferidos, err := p.sheets.ObtenerReferidos(ctx)
	if err != nil {
		return nil, nil, fallo(PasoFetch, "referidos", err)
	}

	operaciones := schema.ValidarLote(rawsKPI, "kpi", p.logger, schema.ValidarAcumulado)
	referidos := schema.ValidarLote(rawsReferidos, "referidos", p.logger, schema.ValidarReferido)

	opsFS, _, _ := reconcile.NewFueraSistemaCalcular(f.fueraSistemaPEN, f.fueraSistemaUSD).Calcular()

	registros, err := kpi.NewKPICalcular(
		operaciones, opsFS, referidos, p.ejecutivos, f.tipoCambio, nil, p.logger,
	).Calcular()
	if err != nil {
		return nil, nil, fallo(PasoCalcular, "kpi", err)
	}
	return registros, f, nil
}

// CalcularComisiones classifies and rates the KPI dataset.
func (p *Processor) CalcularComisiones(ctx context.Context, fechaCorte time.Time) ([]models.Comision, error) {
	registros, f, err := p.calcularKPI(ctx, fechaCorte)
	if err != nil {
		return nil, err
	}

	rawsCrecer, err := p.sheets.ObtenerFondoCrecer(ctx)
	if err != nil {
		return nil, fallo(PasoFetch, "fondo_crecer", err)
	}
	rawsPromocional, err := p.sheets.ObtenerFondoPromocional(ctx)
	if err != nil {
		return nil, fallo(PasoFetch, "fondo_promocional", err)
	}

	crecer := schema.ValidarLote(rawsCrecer, "fondo_crecer", p.logger, schema.ValidarFondoCrecer)
	promocional := schema.ValidarLote(rawsPromocional, "fondo_promocional", p.logger, schema.ValidarFondoPromocional)

	fondos := comisiones.NewFondosCalcular(crecer, promocional)
	tarifador := comisiones.NewTarifador(p.ejecutivos, f.tipoCambio.Actual(fechaCorte))

	out, err := comisiones.NewComisionesCalcular(
		registros, p.ejecutivos, fondos, tarifador, p.logger,
	).Calcular()
	if err != nil {
		return nil, fallo(PasoCalcular, "comisiones", err)
	}
	return out, nil
}

// RunCXC computes and persists the accounts-receivable tables.
func (p *Processor) RunCXC(ctx context.Context, fechaCorte time.Time) error {
	acumulado, pagos, devoluciones, err := p.CalcularCXC(ctx, fechaCorte)
	if err != nil {
		return err
	}
	if err := p.persistir(ctx, store.TablaAcumulado, filasAcumulado(acumulado)); err != nil {
		return err
	}
	if err := p.persistir(ctx, store.TablaPagos, filasPagos(pagos)); err != nil {
		return err
	}
	return p.persistir(ctx, store.TablaDevoluciones, filasDevoluciones(devoluciones))
}

// RunKPI computes and persists the profitability table.
func (p *Processor) RunKPI(ctx context.Context, fechaCorte time.Time) error {
	registros, err := p.CalcularKPI(ctx, fechaCorte)
	if err != nil {
		return err
	}
	return p.persistir(ctx, store.TablaKPI, filasKPI(registros))
}

// RunComisiones computes and persists the commission table.
func (p *Processor) RunComisiones(ctx context.Context, fechaCorte time.Time) error {
	out, err := p.CalcularComisiones(ctx, fechaCorte)
	if err != nil {
		return err
	}
	return p.persistir(ctx, store.TablaComisiones, filasComisiones(out))
}

// Run executes the three stages in order.
func (p *Processor) Run(ctx context.Context, fechaCorte time.Time) error {
	inicio := time.Now()
	if err := p.RunCXC(ctx, fechaCorte); err != nil {
		return err
	}
	if err := p.RunKPI(ctx, fechaCorte); err != nil {
		return err
	}
	if err := p.RunComisiones(ctx, fechaCorte); err != nil {
		return err
	}
	p.logger.Info("pipeline completado",
		logging.F("fecha_corte", fechaCorte.Format("2006-01-02")),
		logging.F("duracion", time.Since(inicio).String()))
	return nil
}

func (p *Processor) persistir(ctx context.Context, tabla string, rows []map[string]interface{}) error {
	if p.sink == nil {
		p.logger.Warn("sin base de datos configurada, se omite la persistencia",
			logging.F("tabla", tabla))
		return nil
	}
	if err := p.sink.DeleteAndBulkInsertChunked(ctx, tabla, rows); err != nil {
		return fallo(PasoPersistir, tabla, err)
	}
	return nil
}
