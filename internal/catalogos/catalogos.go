// Package catalogos loads the versionable data tables the pipeline depends
// on: the settlement-code lists that drive collection labeling and the
// executive tables that drive commission rates. They ship as YAML under
// config/ so updates do not require a redeploy.
package catalogos

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"andescapital/cxc-etl/internal/logging"
)

// Codigos holds the settlement-code lists. CodigosMoraMayo forces the
// "MORA A MAYO" write-off label; CodigosCobranzaEspecial overrides overdue
// accounts to "COBRANZA ESPECIAL".
type Codigos struct {
	CodigosMoraMayo         []string `yaml:"codigos_mora_mayo"`
	CodigosCobranzaEspecial []string `yaml:"codigos_cobranza_especial"`

	moraMayo         map[string]bool
	cobranzaEspecial map[string]bool
}

// EnMoraMayo reports membership of a settlement code in the mora list.
func (c *Codigos) EnMoraMayo(codigo string) bool {
	return c.moraMayo[codigo]
}

// EnCobranzaEspecial reports membership in the special-collections list.
func (c *Codigos) EnCobranzaEspecial(codigo string) bool {
	return c.cobranzaEspecial[codigo]
}

func (c *Codigos) index() {
	c.moraMayo = make(map[string]bool, len(c.CodigosMoraMayo))
	for _, code := range c.CodigosMoraMayo {
		c.moraMayo[code] = true
	}
	c.cobranzaEspecial = make(map[string]bool, len(c.CodigosCobranzaEspecial))
	for _, code := range c.CodigosCobranzaEspecial {
		c.cobranzaEspecial[code] = true
	}
}

// NewCodigos builds an indexed Codigos from explicit lists. Tests and
// callers that do not read the shipped file use this.
func NewCodigos(moraMayo, cobranzaEspecial []string) *Codigos {
	c := &Codigos{
		CodigosMoraMayo:         moraMayo,
		CodigosCobranzaEspecial: cobranzaEspecial,
	}
	c.index()
	return c
}

// canonicalCobranzaEspecial is the length of the full special-collections
// list. The legacy system circulated a truncated copy of this list; loading
// a shorter one is almost certainly that copy and gets flagged.
const canonicalCobranzaEspecial = 12

// LoadCodigos reads the settlement-code lists from a YAML file.
func LoadCodigos(path string, logger logging.Logger) (*Codigos, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading codigos file %s: %w", path, err)
	}

	var c Codigos
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error parsing codigos file %s: %w", path, err)
	}
	c.index()

	if len(c.CodigosCobranzaEspecial) < canonicalCobranzaEspecial && logger != nil {
		logger.Warn("cobranza especial list is shorter than the canonical set; check for the truncated legacy copy",
			logging.F("loaded", len(c.CodigosCobranzaEspecial)),
			logging.F("canonical", canonicalCobranzaEspecial))
	}

	return &c, nil
}
