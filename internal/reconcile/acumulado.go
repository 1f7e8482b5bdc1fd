package reconcile

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"

	"andescapital/cxc-etl/internal/catalogos"
	"andescapital/cxc-etl/internal/currencyutils"
	"andescapital/cxc-etl/internal/models"
)

// Account status and collection labels derived by the reconciliation.
const (
	EstadoVencido          = "VENCIDO"
	EstadoVigente          = "VIGENTE"
	EstadoCobranzaEspecial = "COBRANZA ESPECIAL"
	TipoPagoMoraMayo       = "MORA A MAYO"
)

// AcumuladoDIMCalcular reconciles the accumulated operations with their
// payments and sector data and derives the balance and account-status
// columns. The per-record rules run in a fixed first-match-wins order; any
// failure aborts the whole calculation with no partial output.
type AcumuladoDIMCalcular struct {
	operaciones []models.Operacion
	pagos       *PagosCalcular
	sector      *SectorCalcular
	tipoCambio  *TipoCambioCalcular
	codigos     *catalogos.Codigos

	// fechaCorte is the explicit cutoff for status derivation. It is a
	// required parameter so the calculation never reads the wall clock.
	fechaCorte time.Time
}

// NewAcumuladoDIMCalcular wires the reconciliation inputs.
func NewAcumuladoDIMCalcular(
	operaciones []models.Operacion,
	pagos *PagosCalcular,
	sector *SectorCalcular,
	tipoCambio *TipoCambioCalcular,
	codigos *catalogos.Codigos,
	fechaCorte time.Time,
) *AcumuladoDIMCalcular {
	return &AcumuladoDIMCalcular{
		operaciones: operaciones,
		pagos:       pagos,
		sector:      sector,
		tipoCambio:  tipoCambio,
		codigos:     codigos,
		fechaCorte:  fechaCorte,
	}
}

// Calcular runs the reconciliation. Empty input yields an empty result;
// missing collaborators are a fatal configuration error.
func (c *AcumuladoDIMCalcular) Calcular() ([]models.AcumuladoDIM, error) {
	if c.pagos == nil || c.sector == nil || c.tipoCambio == nil {
		return nil, fmt.Errorf("acumulado DIM: faltan datasets de entrada")
	}
	if c.codigos == nil {
		return nil, fmt.Errorf("acumulado DIM: listas de códigos no cargadas")
	}
	if c.fechaCorte.IsZero() {
		return nil, fmt.Errorf("acumulado DIM: fecha de corte requerida")
	}

	pagosPorDet := c.pagos.PorDet()
	ventaActual := c.tipoCambio.Actual(c.fechaCorte)

	out := make([]models.AcumuladoDIM, 0, len(c.operaciones))
	for _, op := range c.operaciones {
		rec := models.AcumuladoDIM{Operacion: op}

		// 1. Payment join: no payment means nothing paid yet.
		if pago, ok := pagosPorDet[op.IdLiquidacionDet]; ok {
			rec.TipoPago = pago.TipoPago
			rec.MontoPago = pago.MontoPago
			rec.SaldoDeuda = pago.SaldoDeuda
		}

		// 2. Sector join with documented defaults.
		rec.Sector, rec.GrupoEco = c.sector.Buscar(op.RUCPagador)

		// 3. Outstanding balance. The order matters: a partial payment
		// reports its own remaining debt; an untouched operation still
		// owes the confirmed principal; anything else nets the payment.
		switch {
		case rec.TipoPago == models.TipoPagoParcial:
			rec.SaldoTotal = rec.SaldoDeuda
		case rec.TipoPago == "":
			rec.SaldoTotal = op.NetoConfirmado
		default:
			rec.SaldoTotal = op.NetoConfirmado.Sub(rec.MontoPago)
		}

		// 4. Soles-normalized balance at the current sell rate.
		if op.Moneda == currencyutils.CurrencyPEN {
			rec.SaldoTotalPen = rec.SaldoTotal
		} else {
			rec.SaldoTotalPen = rec.SaldoTotal.Mul(ventaActual)
		}

		// 5. Write-off relabeling only applies to partial/unpaid rows.
		rec.TipoPagoReal = rec.TipoPago
		if rec.TipoPago == models.TipoPagoParcial || rec.TipoPago == "" {
			if c.codigos.EnMoraMayo(op.CodigoLiquidacion) {
				rec.TipoPagoReal = TipoPagoMoraMayo
			}
		}

		// 6. Account status against the cutoff date.
		if !op.FechaConfirmado.After(c.fechaCorte) {
			rec.EstadoCuenta = EstadoVencido
		} else {
			rec.EstadoCuenta = EstadoVigente
		}

		// 7. Special-collections override, overdue accounts only.
		rec.EstadoReal = rec.EstadoCuenta
		if rec.EstadoCuenta == EstadoVencido && c.codigos.EnCobranzaEspecial(op.CodigoLiquidacion) {
			rec.EstadoReal = EstadoCobranzaEspecial
		}

		out = append(out, rec)
	}

	return out, nil
}

// CalcularDF returns the reconciled dataset in tabular form.
func (c *AcumuladoDIMCalcular) CalcularDF() (dataframe.DataFrame, error) {
	records, err := c.Calcular()
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return acumuladoToDataFrame(records), nil
}
