package reconcile

import (
	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/dateutils"
	"andescapital/cxc-etl/internal/models"
	"andescapital/cxc-etl/internal/schema"
)

// Synthetic ID namespaces for out-of-system records. All generated IDs sit
// at or above the base so they can never collide with source-system IDs.
// Each namespace gets its own sub-offset.
const (
	SyntheticIDBase      int64 = 1_000_000
	syntheticOffsetCab   int64 = 0
	syntheticOffsetDet   int64 = 100_000
	syntheticOffsetPago  int64 = 200_000
	syntheticOffsetDev   int64 = 300_000
)

// FueraSistemaCalcular merges the PEN and USD out-of-system sheets into
// synthetic operation records plus their companion payment and refund
// rows.
type FueraSistemaCalcular struct {
	pen []schema.FueraSistemaCrudo
	usd []schema.FueraSistemaCrudo
}

// NewFueraSistemaCalcular builds the calculator over validated sheet rows.
func NewFueraSistemaCalcular(pen, usd []schema.FueraSistemaCrudo) *FueraSistemaCalcular {
	return &FueraSistemaCalcular{pen: pen, usd: usd}
}

type parClave struct {
	codigo    string
	documento string
}

// dedupeUltimo drops duplicate (CodigoLiquidacion, NroDocumento) pairs
// keeping the LAST occurrence, preserving the kept rows' positions. This
// must run before ID generation: IDs are assigned per surviving pair, so
// generating first would waste ID space and could reference discarded
// rows.
func dedupeUltimo(rows []schema.FueraSistemaCrudo) []schema.FueraSistemaCrudo {
	ultimo := make(map[parClave]int, len(rows))
	for i, row := range rows {
		ultimo[parClave{row.Operacion.CodigoLiquidacion, row.Operacion.NroDocumento}] = i
	}

	out := make([]schema.FueraSistemaCrudo, 0, len(ultimo))
	for i, row := range rows {
		if ultimo[parClave{row.Operacion.CodigoLiquidacion, row.Operacion.NroDocumento}] == i {
			out = append(out, row)
		}
	}
	return out
}

// Calcular produces the synthetic operations with their deterministic IDs
// plus the companion payment and refund rows to concatenate onto the
// regular datasets.
func (c *FueraSistemaCalcular) Calcular() ([]models.Operacion, []models.Pago, []models.Devolucion) {
	merged := append(append([]schema.FueraSistemaCrudo{}, c.pen...), c.usd...)
	merged = dedupeUltimo(merged)

	// One cab ID per unique settlement code, one det/pago/dev ID per
	// surviving unique pair, assigned in row order.
	cabPorCodigo := make(map[string]int64)
	var nextCab int64

	operaciones := make([]models.Operacion, 0, len(merged))
	pagos := make([]models.Pago, 0, len(merged))
	devoluciones := make([]models.Devolucion, 0, len(merged))

	for i, row := range merged {
		op := row.Operacion

		cab, ok := cabPorCodigo[op.CodigoLiquidacion]
		if !ok {
			cab = SyntheticIDBase + syntheticOffsetCab + nextCab
			cabPorCodigo[op.CodigoLiquidacion] = cab
			nextCab++
		}
		op.IdLiquidacionCab = cab
		op.IdLiquidacionDet = SyntheticIDBase + syntheticOffsetDet + int64(i)

		idPago := SyntheticIDBase + syntheticOffsetPago + int64(i)
		idDev := SyntheticIDBase + syntheticOffsetDev + int64(i)

		operaciones = append(operaciones, op)

		fechaPago, _ := dateutils.ParseDate(row.FechaPago)
		pagos = append(pagos, models.Pago{
			IdLiquidacionPago: &idPago,
			IdLiquidacionDet:  op.IdLiquidacionDet,
			FechaPago:         fechaPago,
			TipoPago:          models.TipoPagoFueraSistema,
			MontoPago:         op.MontoDesembolso,
			SaldoDeuda:        decimal.Zero,
		})
		devoluciones = append(devoluciones, models.Devolucion{
			IdLiquidacionDevolucion: &idDev,
			IdLiquidacionDet:        op.IdLiquidacionDet,
			MontoDevolucion:         decimal.Zero,
			EstadoDevolucion:        "",
		})
	}

	return operaciones, pagos, devoluciones
}
