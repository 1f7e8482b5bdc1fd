package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoCambio is one daily exchange-rate row. The "current" rate for a
// cutoff date is the row with the maximum TipoCambioFecha not after it.
type TipoCambio struct {
	TipoCambioFecha  time.Time
	TipoCambioCompra decimal.Decimal
	TipoCambioVenta  decimal.Decimal
}

// Default sector values applied when a payer RUC has no mapping.
const (
	SectorSinClasificar = "SIN CLASIFICAR"
)

// SectorPagador maps a payer RUC to its economic sector and group.
// Duplicated RUCs resolve last-write-wins.
type SectorPagador struct {
	RUCPagador string
	Sector     string
	GrupoEco   string
}

// FondoCrecer flags a settlement covered by the Fondo Crecer guarantee
// program. Garantia is the guaranteed fraction in [0,1].
type FondoCrecer struct {
	CodigoLiquidacion string
	Garantia          decimal.Decimal
}

// FondoPromocional flags a settlement financed under the promotional fund;
// membership alone changes the funding-cost model.
type FondoPromocional struct {
	CodigoLiquidacion string
}

// Referido records which executive referred a settlement. Referencia is
// fuzzy-matched against the canonical executive table before use.
type Referido struct {
	CodigoLiquidacion string
	Referencia        string
}
