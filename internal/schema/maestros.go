package schema

import (
	"fmt"

	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/models"
)

// ValidarTipoCambio validates one daily exchange-rate row. Both rates and
// the date are mandatory; a rate row without them is useless.
func ValidarTipoCambio(raw Raw) (models.TipoCambio, error) {
	var tc models.TipoCambio
	var err error

	if tc.TipoCambioFecha, err = raw.Fecha("TipoCambioFecha"); err != nil {
		return tc, err
	}
	if tc.TipoCambioCompra, err = raw.DecimalRequerido("TipoCambioCompra"); err != nil {
		return tc, err
	}
	if tc.TipoCambioVenta, err = raw.DecimalRequerido("TipoCambioVenta"); err != nil {
		return tc, err
	}
	if tc.TipoCambioVenta.IsZero() {
		return tc, fmt.Errorf("campo TipoCambioVenta: tasa en cero")
	}

	return tc, nil
}

// ValidarSector validates one payer-sector mapping row.
func ValidarSector(raw Raw) (models.SectorPagador, error) {
	var s models.SectorPagador

	s.RUCPagador = raw.Texto("RUCPagador")
	if s.RUCPagador == "" {
		return s, fmt.Errorf("campo RUCPagador: valor requerido")
	}
	s.Sector = raw.Texto("Sector")
	s.GrupoEco = raw.Texto("GrupoEco")

	return s, nil
}

// ValidarFondoCrecer validates one Fondo Crecer guarantee row. Garantia is
// a fraction; the sheet sometimes carries it as a percentage, which is
// normalized down.
func ValidarFondoCrecer(raw Raw) (models.FondoCrecer, error) {
	var f models.FondoCrecer

	f.CodigoLiquidacion = raw.Texto("CodigoLiquidacion")
	if f.CodigoLiquidacion == "" {
		return f, fmt.Errorf("campo CodigoLiquidacion: valor requerido")
	}

	f.Garantia = raw.Decimal("Garantia")
	if f.Garantia.GreaterThan(decimal.NewFromInt(1)) {
		f.Garantia = f.Garantia.Div(decimal.NewFromInt(100))
	}

	return f, nil
}

// ValidarFondoPromocional validates one promotional-fund membership row.
func ValidarFondoPromocional(raw Raw) (models.FondoPromocional, error) {
	var f models.FondoPromocional

	f.CodigoLiquidacion = raw.Texto("CodigoLiquidacion")
	if f.CodigoLiquidacion == "" {
		return f, fmt.Errorf("campo CodigoLiquidacion: valor requerido")
	}

	return f, nil
}

// ValidarReferido validates one referral row.
func ValidarReferido(raw Raw) (models.Referido, error) {
	var r models.Referido

	r.CodigoLiquidacion = raw.Texto("CodigoLiquidacion")
	if r.CodigoLiquidacion == "" {
		return r, fmt.Errorf("campo CodigoLiquidacion: valor requerido")
	}
	r.Referencia = raw.Texto("Referencia")

	return r, nil
}
