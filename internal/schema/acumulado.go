package schema

import (
	"fmt"
	"strings"

	"andescapital/cxc-etl/internal/models"
)

// ValidarAcumulado validates one accumulated-operation record from the
// webservice. Both liquidation IDs, the settlement code and the operation
// dates are mandatory; fee fields default to zero.
func ValidarAcumulado(raw Raw) (models.Operacion, error) {
	var op models.Operacion
	var err error

	if op.IdLiquidacionCab, err = raw.Entero("IdLiquidacionCab"); err != nil {
		return op, err
	}
	if op.IdLiquidacionDet, err = raw.Entero("IdLiquidacionDet"); err != nil {
		return op, err
	}

	op.CodigoLiquidacion = raw.Texto("CodigoLiquidacion")
	if op.CodigoLiquidacion == "" {
		return op, fmt.Errorf("campo CodigoLiquidacion: valor requerido")
	}
	op.NroDocumento = raw.Texto("NroDocumento")

	op.RUCCliente = raw.Texto("RUCCliente")
	op.RazonSocialCliente = raw.Texto("RazonSocialCliente")
	op.RUCPagador = raw.Texto("RUCPagador")
	op.RazonSocialPagador = raw.Texto("RazonSocialPagador")

	op.Moneda = strings.ToUpper(raw.Texto("Moneda"))
	op.TipoOperacion = raw.Texto("TipoOperacion")
	op.Ejecutivo = raw.Texto("Ejecutivo")

	if op.NetoConfirmado, err = raw.DecimalRequerido("NetoConfirmado"); err != nil {
		return op, err
	}
	op.MontoDesembolso = raw.Decimal("MontoDesembolso")
	op.Intereses = raw.Decimal("Intereses")
	op.GastosContrato = raw.Decimal("GastosContrato")
	op.GastosDiversos = raw.Decimal("GastosDiversos")
	op.ComisionEstructuracion = raw.Decimal("ComisionEstructuracion")
	op.ComisionEstructuracionConIGV = raw.Decimal("ComisionEstructuracionConIGV")
	op.TasaNominalMensual = raw.Decimal("TasaNominalMensual")

	if op.DiasEfectivo, err = raw.EnteroComoInt("DiasEfectivo"); err != nil {
		return op, err
	}
	if op.FechaOperacion, err = raw.Fecha("FechaOperacion"); err != nil {
		return op, err
	}
	if op.FechaConfirmado, err = raw.Fecha("FechaConfirmado"); err != nil {
		return op, err
	}

	return op, nil
}

// FueraSistemaCrudo is an out-of-system operation as validated from the
// PEN/USD sheets, before synthetic ID assignment. The payment and refund
// IDs stay optional because they never exist for these records.
type FueraSistemaCrudo struct {
	Operacion models.Operacion

	IdLiquidacionPago       *int64
	IdLiquidacionDevolucion *int64
	FechaPago               string
}

// ValidarFueraSistema validates one out-of-system sheet row. The moneda
// parameter comes from which sheet the row was read from (PEN or USD).
func ValidarFueraSistema(moneda string) func(Raw) (FueraSistemaCrudo, error) {
	return func(raw Raw) (FueraSistemaCrudo, error) {
		var fs FueraSistemaCrudo
		var err error

		op := &fs.Operacion
		op.CodigoLiquidacion = raw.Texto("CodigoLiquidacion")
		if op.CodigoLiquidacion == "" {
			return fs, fmt.Errorf("campo CodigoLiquidacion: valor requerido")
		}
		op.NroDocumento = raw.Texto("NroDocumento")

		op.RUCCliente = raw.Texto("RUCCliente")
		op.RazonSocialCliente = raw.Texto("RazonSocialCliente")
		op.RUCPagador = raw.Texto("RUCPagador")
		op.RazonSocialPagador = raw.Texto("RazonSocialPagador")

		op.Moneda = moneda
		op.TipoOperacion = raw.Texto("TipoOperacion")
		op.Ejecutivo = raw.Texto("Ejecutivo")

		if op.NetoConfirmado, err = raw.DecimalRequerido("NetoConfirmado"); err != nil {
			return fs, err
		}
		op.MontoDesembolso = raw.Decimal("MontoDesembolso")
		op.Intereses = raw.Decimal("Intereses")
		op.GastosContrato = raw.Decimal("GastosContrato")
		op.GastosDiversos = raw.Decimal("GastosDiversos")
		op.ComisionEstructuracion = raw.Decimal("ComisionEstructuracion")
		op.ComisionEstructuracionConIGV = raw.Decimal("ComisionEstructuracionConIGV")
		op.TasaNominalMensual = raw.Decimal("TasaNominalMensual")

		if op.DiasEfectivo, err = raw.EnteroComoInt("DiasEfectivo"); err != nil {
			return fs, err
		}
		if op.FechaOperacion, err = raw.Fecha("FechaOperacion"); err != nil {
			return fs, err
		}
		op.FechaConfirmado = raw.FechaOpcional("FechaConfirmado")
		if op.FechaConfirmado.IsZero() {
			op.FechaConfirmado = op.FechaOperacion
		}

		op.FueraSistema = models.FueraSistemaSi

		// These IDs never exist for out-of-system rows; unparsable input
		// resolves to nil instead of failing the record.
		fs.IdLiquidacionPago = raw.EnteroOpcional("IdLiquidacionPago")
		fs.IdLiquidacionDevolucion = raw.EnteroOpcional("IdLiquidacionDevolucion")
		fs.FechaPago = raw.Texto("FechaPago")

		return fs, nil
	}
}
