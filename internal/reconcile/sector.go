package reconcile

import (
	"andescapital/cxc-etl/internal/models"
)

// SectorCalcular owns the payer-to-sector mapping. Duplicate RUCs resolve
// last-write-wins, matching the order the sheet rows arrive in.
type SectorCalcular struct {
	porRUC map[string]models.SectorPagador
	orden  []string
}

// NewSectorCalcular indexes validated sector rows by payer RUC.
func NewSectorCalcular(sectores []models.SectorPagador) *SectorCalcular {
	c := &SectorCalcular{porRUC: make(map[string]models.SectorPagador, len(sectores))}
	for _, s := range sectores {
		if _, seen := c.porRUC[s.RUCPagador]; !seen {
			c.orden = append(c.orden, s.RUCPagador)
		}
		c.porRUC[s.RUCPagador] = s
	}
	return c
}

// Buscar resolves the sector classification for a payer RUC. Missing RUCs
// get the documented defaults rather than an error.
func (c *SectorCalcular) Buscar(rucPagador string) (sector, grupoEco string) {
	if s, ok := c.porRUC[rucPagador]; ok {
		return s.Sector, s.GrupoEco
	}
	return models.SectorSinClasificar, ""
}

// Calcular returns the deduplicated mapping in first-appearance order.
func (c *SectorCalcular) Calcular() []models.SectorPagador {
	out := make([]models.SectorPagador, 0, len(c.orden))
	for _, ruc := range c.orden {
		out = append(out, c.porRUC[ruc])
	}
	return out
}
