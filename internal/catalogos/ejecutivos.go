package catalogos

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// EjecutivoExterno is an external commercial partner with a fixed personal
// commission rate.
type EjecutivoExterno struct {
	Nombre string  `yaml:"nombre"`
	Tasa   float64 `yaml:"tasa"`
}

// Ejecutivos is the canonical executive table: in-house names, external
// partners with their per-person rates, and the "special" executives whose
// structuring-fee override is currency-aware.
type Ejecutivos struct {
	Internos   []string           `yaml:"internos"`
	Externos   []EjecutivoExterno `yaml:"externos"`
	Especiales []string           `yaml:"especiales"`

	externos   map[string]decimal.Decimal
	internos   map[string]bool
	especiales map[string]bool
}

// EsInterno reports whether the name belongs to an in-house executive.
func (e *Ejecutivos) EsInterno(nombre string) bool {
	return e.internos[nombre]
}

// TasaExterno returns the fixed personal rate for an external executive.
func (e *Ejecutivos) TasaExterno(nombre string) (decimal.Decimal, bool) {
	tasa, ok := e.externos[nombre]
	return tasa, ok
}

// EsEspecial reports whether the executive follows the currency-aware
// structuring-fee override.
func (e *Ejecutivos) EsEspecial(nombre string) bool {
	return e.especiales[nombre]
}

// Nombres returns every canonical name, the set the fuzzy resolver
// matches against.
func (e *Ejecutivos) Nombres() []string {
	nombres := make([]string, 0, len(e.Internos)+len(e.Externos)+len(e.Especiales))
	nombres = append(nombres, e.Internos...)
	for _, ext := range e.Externos {
		nombres = append(nombres, ext.Nombre)
	}
	nombres = append(nombres, e.Especiales...)
	return nombres
}

func (e *Ejecutivos) index() {
	e.internos = make(map[string]bool, len(e.Internos))
	for _, n := range e.Internos {
		e.internos[n] = true
	}
	e.externos = make(map[string]decimal.Decimal, len(e.Externos))
	for _, ext := range e.Externos {
		e.externos[ext.Nombre] = decimal.NewFromFloat(ext.Tasa)
	}
	e.especiales = make(map[string]bool, len(e.Especiales))
	for _, n := range e.Especiales {
		e.especiales[n] = true
	}
}

// NewEjecutivos builds an indexed table from explicit values.
func NewEjecutivos(internos []string, externos []EjecutivoExterno, especiales []string) *Ejecutivos {
	e := &Ejecutivos{Internos: internos, Externos: externos, Especiales: especiales}
	e.index()
	return e
}

// LoadEjecutivos reads the executive table from a YAML file.
func LoadEjecutivos(path string) (*Ejecutivos, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading ejecutivos file %s: %w", path, err)
	}

	var e Ejecutivos
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("error parsing ejecutivos file %s: %w", path, err)
	}
	e.index()
	return &e, nil
}
