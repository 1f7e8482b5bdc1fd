package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission classification outcomes.
const (
	ClasificacionNuevo      = "Nuevo"
	ClasificacionRecurrente = "Recurrente"
)

// Comision is one classification-and-rate decision: which tier an
// operation's (executive, client/payer, month) combination falls into and
// the resulting commission amount.
type Comision struct {
	Ejecutivo         string `csv:"Ejecutivo"`
	CodigoLiquidacion string `csv:"CodigoLiquidacion"`
	RUCCliente        string `csv:"RUCCliente"`
	RUCPagador        string `csv:"RUCPagador"`
	TipoOperacion     string `csv:"TipoOperacion"`
	Mes               string `csv:"Mes"`

	// Tipo is Nuevo or Recurrente; Detalle is the free-text justification
	// driving rate selection ("promoción vigente", "reactivación", ...).
	Tipo    string `csv:"Tipo"`
	Detalle string `csv:"Detalle"`

	UtilidadTotalSoles decimal.Decimal `csv:"UtilidadTotalSoles"`
	Tasa               decimal.Decimal `csv:"Tasa"`
	MontoComision      decimal.Decimal `csv:"MontoComision"`
}

// Row flattens the commission decision for the persistence sink.
func (c Comision) Row() map[string]interface{} {
	return map[string]interface{}{
		"Ejecutivo":          c.Ejecutivo,
		"CodigoLiquidacion":  c.CodigoLiquidacion,
		"RUCCliente":         c.RUCCliente,
		"RUCPagador":         c.RUCPagador,
		"TipoOperacion":      c.TipoOperacion,
		"Mes":                c.Mes,
		"Tipo":               c.Tipo,
		"Detalle":            c.Detalle,
		"UtilidadTotalSoles": c.UtilidadTotalSoles.InexactFloat64(),
		"Tasa":               c.Tasa.InexactFloat64(),
		"MontoComision":      c.MontoComision.InexactFloat64(),
	}
}

// Promocion is an active new-client promotion registered when a key is
// first seen or reactivated. While active it forces Nuevo classification
// for the same executive.
type Promocion struct {
	Clave      string
	RUCCliente string
	RUCPagador string
	Ejecutivo  string
	Registrada time.Time
	Expira     time.Time
}

// Activa reports whether the promotion is still in force for the given
// month: the stored expiry must fall strictly after the month and the
// executive must match.
func (p Promocion) Activa(mes time.Time, ejecutivo string) bool {
	return p.Ejecutivo == ejecutivo && p.Expira.After(mes)
}
