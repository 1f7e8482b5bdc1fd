package comisiones

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/catalogos"
	"andescapital/cxc-etl/internal/dateutils"
	"andescapital/cxc-etl/internal/logging"
	"andescapital/cxc-etl/internal/models"
)

// Classification details recorded on commission rows.
const (
	DetallePromocionVigente = "promoción vigente"
	DetalleReactivacion     = "reactivación"
	DetalleClienteNuevo     = "cliente nuevo, pagador recurrente"
	DetallePagadorNuevo     = "cliente recurrente, pagador nuevo"
	DetalleAmbosNuevos      = "cliente y pagador nuevos"
)

// ComisionesCalcular runs the month-ordered classification fold and the
// rate engine over the KPI operation stream.
type ComisionesCalcular struct {
	operaciones []models.KPI
	ejecutivos  *catalogos.Ejecutivos
	fondos      *FondosCalcular
	tarifador   *Tarifador
	logger      logging.Logger
}

// NewComisionesCalcular wires the commission inputs. fondos may be nil
// when neither fund table is available; cost overrides are skipped then.
func NewComisionesCalcular(
	operaciones []models.KPI,
	ejecutivos *catalogos.Ejecutivos,
	fondos *FondosCalcular,
	tarifador *Tarifador,
	logger logging.Logger,
) *ComisionesCalcular {
	return &ComisionesCalcular{
		operaciones: operaciones,
		ejecutivos:  ejecutivos,
		fondos:      fondos,
		tarifador:   tarifador,
		logger:      logger,
	}
}

// clave builds the classification key: factoring operations key on the
// (client, payer) pair; confirming and working capital key on the payer
// alone.
func clave(op models.KPI) (string, string, string) {
	if op.TipoOperacion == models.ProductoFactoring {
		return op.RUCCliente + "|" + op.RUCPagador, op.RUCCliente, op.RUCPagador
	}
	return op.RUCPagador, "", op.RUCPagador
}

// grupoMes is one executive+key bucket within a month.
type grupoMes struct {
	ejecutivo  string
	clave      string
	rucCliente string
	rucPagador string
	ops        []models.KPI
}

// Calcular classifies every executive/key/month combination and computes
// its commission. Months are processed in ascending order; promotion and
// last-seen state advance only between months, so the outcome does not
// depend on iteration order within a month.
func (c *ComisionesCalcular) Calcular() ([]models.Comision, error) {
	if c.ejecutivos == nil || c.tarifador == nil {
		return nil, fmt.Errorf("comisiones: faltan datasets de entrada")
	}

	ajustadas := make([]models.KPI, 0, len(c.operaciones))
	for _, op := range c.operaciones {
		if c.fondos != nil {
			op = c.fondos.Ajustar(op)
		}
		ajustadas = append(ajustadas, op)
	}

	porMes := map[string][]models.KPI{}
	for _, op := range ajustadas {
		if op.Mes == "" {
			continue
		}
		porMes[op.Mes] = append(porMes[op.Mes], op)
	}
	meses := make([]string, 0, len(porMes))
	for mes := range porMes {
		meses = append(meses, mes)
	}
	sort.Strings(meses)

	promociones := NewPromociones()
	ultimaVistaCliente := map[string]time.Time{}
	ultimaVistaPagador := map[string]time.Time{}
	clavesVistas := map[string]bool{}
	nuevosMesAnterior := map[string]bool{}
	mesAnteriorKey := ""

	var out []models.Comision

	for _, mesKey := range meses {
		mes, err := time.Parse("2006-01", mesKey)
		if err != nil {
			return nil, fmt.Errorf("comisiones: mes inválido %q: %w", mesKey, err)
		}

		grupos := agruparMes(porMes[mesKey])

		// The prior-month tier only applies to the immediately preceding
		// calendar month; a gap in the data clears the list.
		if mesAnteriorKey != mes.AddDate(0, -1, 0).Format("2006-01") {
			nuevosMesAnterior = map[string]bool{}
		}

		var promosDelMes []models.Promocion
		vistasDelMesCliente := map[string]time.Time{}
		vistasDelMesPagador := map[string]time.Time{}
		nuevosDelMes := map[string]bool{}

		for _, g := range grupos {
			tipo, detalle, registraPromo := c.clasificar(
				g, mes, promociones, clavesVistas,
				ultimaVistaCliente, ultimaVistaPagador,
			)
			if registraPromo {
				promosDelMes = append(promosDelMes,
					nuevaPromocion(g.clave, g.rucCliente, g.rucPagador, g.ejecutivo, mes))
			}
			esNuevo := tipo == models.ClasificacionNuevo
			if esNuevo {
				nuevosDelMes[g.clave] = true
			}

			tasa, monto := c.tarifador.Tarifa(g.ops, esNuevo, nuevosMesAnterior[g.clave])

			utilidadTotal := decimalSum(g.ops)
			out = append(out, models.Comision{
				Ejecutivo:          g.ejecutivo,
				CodigoLiquidacion:  g.ops[0].CodigoLiquidacion,
				RUCCliente:         g.rucCliente,
				RUCPagador:         g.rucPagador,
				TipoOperacion:      g.ops[0].TipoOperacion,
				Mes:                mesKey,
				Tipo:               tipo,
				Detalle:            detalle,
				UtilidadTotalSoles: utilidadTotal,
				Tasa:               tasa,
				MontoComision:      monto,
			})

			// Month-local occurrence tracking; folded in below.
			for _, op := range g.ops {
				fecha := op.FechaOperacion
				if g.rucCliente != "" && fecha.After(vistasDelMesCliente[g.rucCliente]) {
					vistasDelMesCliente[g.rucCliente] = fecha
				}
				if g.rucPagador != "" && fecha.After(vistasDelMesPagador[g.rucPagador]) {
					vistasDelMesPagador[g.rucPagador] = fecha
				}
			}
		}

		// Fold the month's state into the cumulative maps only after the
		// whole month is classified.
		promociones = promociones.Merge(promosDelMes)
		for ruc, fecha := range vistasDelMesCliente {
			if fecha.After(ultimaVistaCliente[ruc]) {
				ultimaVistaCliente[ruc] = fecha
			}
		}
		for ruc, fecha := range vistasDelMesPagador {
			if fecha.After(ultimaVistaPagador[ruc]) {
				ultimaVistaPagador[ruc] = fecha
			}
		}
		for _, g := range grupos {
			clavesVistas[g.clave] = true
		}
		nuevosMesAnterior = nuevosDelMes
		mesAnteriorKey = mesKey
	}

	return out, nil
}

// clasificar decides Nuevo/Recurrente for one executive+key bucket.
// Returns the classification, its detail, and whether to register a fresh
// promotion.
func (c *ComisionesCalcular) clasificar(
	g grupoMes,
	mes time.Time,
	promociones *Promociones,
	clavesVistas map[string]bool,
	ultimaVistaCliente, ultimaVistaPagador map[string]time.Time,
) (string, string, bool) {
	// Tier 1: an active promotion locks the Nuevo classification.
	if _, ok := promociones.BuscarActiva(g.clave, g.rucCliente, g.rucPagador, mes, g.ejecutivo); ok {
		return models.ClasificacionNuevo, DetallePromocionVigente, false
	}

	fecha := g.ops[0].FechaOperacion

	// Tier 2: known key — reactivation check on either sub-key gap.
	if clavesVistas[g.clave] {
		gapCliente, gapPagador := 0, 0
		if g.rucCliente != "" {
			if ultima, ok := ultimaVistaCliente[g.rucCliente]; ok {
				gapCliente = dateutils.DaysBetween(ultima, fecha)
			}
		}
		if ultima, ok := ultimaVistaPagador[g.rucPagador]; ok {
			gapPagador = dateutils.DaysBetween(ultima, fecha)
		}
		if gapCliente > DiasReactivacion || gapPagador > DiasReactivacion {
			return models.ClasificacionNuevo, DetalleReactivacion, true
		}
		return models.ClasificacionRecurrente, "", false
	}

	// Tier 3: never-seen key. The detail distinguishes which sub-key is
	// actually new.
	_, clienteConocido := ultimaVistaCliente[g.rucCliente]
	_, pagadorConocido := ultimaVistaPagador[g.rucPagador]
	detalle := DetalleAmbosNuevos
	if clienteConocido && !pagadorConocido {
		detalle = DetallePagadorNuevo
	} else if !clienteConocido && pagadorConocido {
		detalle = DetalleClienteNuevo
	}
	return models.ClasificacionNuevo, detalle, true
}

func decimalSum(ops []models.KPI) decimal.Decimal {
	total := decimal.Zero
	for _, op := range ops {
		total = total.Add(op.Utilidad)
	}
	return total
}

// agruparMes buckets a month's operations by executive+key, preserving
// first-appearance order so output stays deterministic.
func agruparMes(ops []models.KPI) []grupoMes {
	index := map[string]int{}
	var grupos []grupoMes

	for _, op := range ops {
		k, cliente, pagador := clave(op)
		bucket := op.Ejecutivo + "|" + k
		if i, ok := index[bucket]; ok {
			grupos[i].ops = append(grupos[i].ops, op)
			continue
		}
		index[bucket] = len(grupos)
		grupos = append(grupos, grupoMes{
			ejecutivo:  op.Ejecutivo,
			clave:      k,
			rucCliente: cliente,
			rucPagador: pagador,
			ops:        []models.KPI{op},
		})
	}
	return grupos
}
