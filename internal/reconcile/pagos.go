package reconcile

import (
	"andescapital/cxc-etl/internal/models"
)

// PagosCalcular owns the payments dataset: the in-system payments plus the
// companions synthesized from the out-of-system sheets.
type PagosCalcular struct {
	pagos []models.Pago
}

// NewPagosCalcular concatenates the in-system payments with the
// out-of-system companions, in that order.
func NewPagosCalcular(sistema, fueraSistema []models.Pago) *PagosCalcular {
	pagos := make([]models.Pago, 0, len(sistema)+len(fueraSistema))
	pagos = append(pagos, sistema...)
	pagos = append(pagos, fueraSistema...)
	return &PagosCalcular{pagos: pagos}
}

// Calcular returns the full payments dataset.
func (c *PagosCalcular) Calcular() []models.Pago {
	return c.pagos
}

// PorDet indexes payments by IdLiquidacionDet for the reconciliation join.
// An operation with several rows resolves to its latest payment, matching
// the order the source returns them in.
func (c *PagosCalcular) PorDet() map[int64]models.Pago {
	idx := make(map[int64]models.Pago, len(c.pagos))
	for _, p := range c.pagos {
		idx[p.IdLiquidacionDet] = p
	}
	return idx
}

// DevolucionesCalcular owns the refunds dataset, in-system plus
// out-of-system companions.
type DevolucionesCalcular struct {
	devoluciones []models.Devolucion
}

// NewDevolucionesCalcular concatenates the in-system refunds with the
// out-of-system companions.
func NewDevolucionesCalcular(sistema, fueraSistema []models.Devolucion) *DevolucionesCalcular {
	devoluciones := make([]models.Devolucion, 0, len(sistema)+len(fueraSistema))
	devoluciones = append(devoluciones, sistema...)
	devoluciones = append(devoluciones, fueraSistema...)
	return &DevolucionesCalcular{devoluciones: devoluciones}
}

// Calcular returns the full refunds dataset.
func (c *DevolucionesCalcular) Calcular() []models.Devolucion {
	return c.devoluciones
}
