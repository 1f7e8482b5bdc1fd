// Package comisiones classifies each operation as new or recurring per
// executive and computes commission amounts under the tiered rate rules.
package comisiones

import (
	"time"

	"andescapital/cxc-etl/internal/models"
)

// Classification windows. The reactivation threshold and the promotion
// window appear in several rules; these are the single source for both.
const (
	// DiasReactivacion is the gap beyond which a known client/payer
	// counts as new again. Exactly this many days is still recurring.
	DiasReactivacion = 180

	// MesesPromocion is how long a freshly registered promotion stays
	// active.
	MesesPromocion = 6
)

// Promociones is the cumulative promotion state carried across the
// month-ordered fold. Values are immutable: Merge returns a new instance,
// so within-month changes can never affect same-month classification.
type Promociones struct {
	porClave   map[string]models.Promocion
	porCliente map[string]models.Promocion
	porPagador map[string]models.Promocion
}

// NewPromociones returns an empty promotion state.
func NewPromociones() *Promociones {
	return &Promociones{
		porClave:   map[string]models.Promocion{},
		porCliente: map[string]models.Promocion{},
		porPagador: map[string]models.Promocion{},
	}
}

// BuscarActiva resolves an active promotion for the month with the
// three-tier fallback: the exact key first, then the client alone, then
// the payer alone. First match wins.
func (p *Promociones) BuscarActiva(clave, rucCliente, rucPagador string, mes time.Time, ejecutivo string) (models.Promocion, bool) {
	if promo, ok := p.porClave[clave]; ok && promo.Activa(mes, ejecutivo) {
		return promo, true
	}
	if rucCliente != "" {
		if promo, ok := p.porCliente[rucCliente]; ok && promo.Activa(mes, ejecutivo) {
			return promo, true
		}
	}
	if rucPagador != "" {
		if promo, ok := p.porPagador[rucPagador]; ok && promo.Activa(mes, ejecutivo) {
			return promo, true
		}
	}
	return models.Promocion{}, false
}

// Merge folds a month's freshly registered promotions into the cumulative
// state, returning a new instance. Later registrations for the same key
// win.
func (p *Promociones) Merge(nuevas []models.Promocion) *Promociones {
	merged := &Promociones{
		porClave:   make(map[string]models.Promocion, len(p.porClave)+len(nuevas)),
		porCliente: make(map[string]models.Promocion, len(p.porCliente)+len(nuevas)),
		porPagador: make(map[string]models.Promocion, len(p.porPagador)+len(nuevas)),
	}
	for k, v := range p.porClave {
		merged.porClave[k] = v
	}
	for k, v := range p.porCliente {
		merged.porCliente[k] = v
	}
	for k, v := range p.porPagador {
		merged.porPagador[k] = v
	}
	for _, promo := range nuevas {
		merged.porClave[promo.Clave] = promo
		if promo.RUCCliente != "" {
			merged.porCliente[promo.RUCCliente] = promo
		}
		if promo.RUCPagador != "" {
			merged.porPagador[promo.RUCPagador] = promo
		}
	}
	return merged
}

// nuevaPromocion registers a promotion valid for MesesPromocion starting
// at the given month.
func nuevaPromocion(clave, rucCliente, rucPagador, ejecutivo string, mes time.Time) models.Promocion {
	return models.Promocion{
		Clave:      clave,
		RUCCliente: rucCliente,
		RUCPagador: rucPagador,
		Ejecutivo:  ejecutivo,
		Registrada: mes,
		Expira:     mes.AddDate(0, MesesPromocion, 0),
	}
}
