package catalogos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andescapital/cxc-etl/internal/logging"
)

func TestCodigosMembresia(t *testing.T) {
	c := NewCodigos([]string{"LIQ-A"}, []string{"LIQ-B", "LIQ-C"})

	assert.True(t, c.EnMoraMayo("LIQ-A"))
	assert.False(t, c.EnMoraMayo("LIQ-B"))
	assert.True(t, c.EnCobranzaEspecial("LIQ-B"))
	assert.False(t, c.EnCobranzaEspecial("LIQ-A"))
}

func escribirYAML(t *testing.T, contenido string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))
	return path
}

func TestLoadCodigos(t *testing.T) {
	path := escribirYAML(t, `
codigos_mora_mayo:
  - LIQ2019-0087
codigos_cobranza_especial:
  - LIQ2020-0102
  - LIQ2020-0115
  - LIQ2021-0008
  - LIQ2021-0019
  - LIQ2021-0033
  - LIQ2021-0047
  - LIQ2022-0005
  - LIQ2022-0018
  - LIQ2022-0041
  - LIQ2022-0066
  - LIQ2023-0012
  - LIQ2023-0083
`)

	logger := &logging.MockLogger{}
	c, err := LoadCodigos(path, logger)
	require.NoError(t, err)

	assert.True(t, c.EnMoraMayo("LIQ2019-0087"))
	assert.True(t, c.EnCobranzaEspecial("LIQ2023-0083"))
	// The full list loads without the truncation warning.
	assert.Empty(t, logger.EntriesByLevel("WARN"))
}

func TestLoadCodigosListaCorta(t *testing.T) {
	path := escribirYAML(t, `
codigos_cobranza_especial:
  - LIQ2020-0102
  - LIQ2020-0115
`)

	logger := &logging.MockLogger{}
	_, err := LoadCodigos(path, logger)
	require.NoError(t, err)

	// A shorter list still loads, flagged as the possible legacy copy.
	assert.NotEmpty(t, logger.EntriesByLevel("WARN"))
}

func TestLoadCodigosArchivoFaltante(t *testing.T) {
	_, err := LoadCodigos("/no/existe.yaml", &logging.MockLogger{})
	assert.Error(t, err)
}

func TestEjecutivos(t *testing.T) {
	e := NewEjecutivos(
		[]string{"Maria Torres"},
		[]EjecutivoExterno{{Nombre: "Alvaro Paredes", Tasa: 0.10}},
		[]string{"Red, Capital"},
	)

	assert.True(t, e.EsInterno("Maria Torres"))
	assert.False(t, e.EsInterno("Alvaro Paredes"))

	tasa, ok := e.TasaExterno("Alvaro Paredes")
	require.True(t, ok)
	assert.True(t, tasa.Equal(decimal.NewFromFloat(0.10)))

	_, ok = e.TasaExterno("Maria Torres")
	assert.False(t, ok)

	assert.True(t, e.EsEspecial("Red, Capital"))
	assert.ElementsMatch(t, []string{"Maria Torres", "Alvaro Paredes", "Red, Capital"}, e.Nombres())
}

func TestLoadEjecutivos(t *testing.T) {
	path := escribirYAML(t, `
internos:
  - Maria Torres
externos:
  - nombre: Alvaro Paredes
    tasa: 0.10
especiales:
  - "Red, Capital"
`)

	e, err := LoadEjecutivos(path)
	require.NoError(t, err)

	assert.True(t, e.EsInterno("Maria Torres"))
	tasa, ok := e.TasaExterno("Alvaro Paredes")
	require.True(t, ok)
	assert.True(t, tasa.Equal(decimal.NewFromFloat(0.10)))
	assert.True(t, e.EsEspecial("Red, Capital"))
}
