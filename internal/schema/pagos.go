package schema

import (
	"andescapital/cxc-etl/internal/models"
)

// ValidarPago validates one payment record. IdLiquidacionDet is mandatory
// (a payment without its operation is meaningless); amounts default to
// zero and TipoPago to the empty string.
func ValidarPago(raw Raw) (models.Pago, error) {
	var p models.Pago
	var err error

	if p.IdLiquidacionDet, err = raw.Entero("IdLiquidacionDet"); err != nil {
		return p, err
	}
	p.IdLiquidacionPago = raw.EnteroOpcional("IdLiquidacionPago")

	p.TipoPago = raw.Texto("TipoPago")
	p.MontoPago = raw.Decimal("MontoPago")
	p.SaldoDeuda = raw.Decimal("SaldoDeuda")
	p.FechaPago = raw.FechaOpcional("FechaPago")

	return p, nil
}

// ValidarDevolucion validates one refund record tied to an operation.
func ValidarDevolucion(raw Raw) (models.Devolucion, error) {
	var d models.Devolucion
	var err error

	if d.IdLiquidacionDet, err = raw.Entero("IdLiquidacionDet"); err != nil {
		return d, err
	}
	d.IdLiquidacionDevolucion = raw.EnteroOpcional("IdLiquidacionDevolucion")

	d.MontoDevolucion = raw.Decimal("MontoDevolucion")
	d.EstadoDevolucion = raw.Texto("EstadoDevolucion")

	return d, nil
}
