package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunks(t *testing.T) {
	rows := make([]map[string]interface{}, 5)
	for i := range rows {
		rows[i] = map[string]interface{}{"n": i}
	}

	tests := []struct {
		name     string
		size     int
		expected []int
	}{
		{"Exact division", 5, []int{5}},
		{"Remainder in last chunk", 2, []int{2, 2, 1}},
		{"Size larger than input", 100, []int{5}},
		{"Invalid size falls back to default", 0, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Chunks(rows, tt.size)
			require.Len(t, chunks, len(tt.expected))
			for i, c := range chunks {
				// A chunk is never empty.
				assert.NotEmpty(t, c)
				assert.Len(t, c, tt.expected[i])
			}
		})
	}

	assert.Empty(t, Chunks(nil, 10))
}

func TestIntersectPreservaOrdenDeclarado(t *testing.T) {
	declaradas := []string{"A", "B", "C", "D"}
	row := map[string]interface{}{"D": 1, "B": 2, "X": 3}

	assert.Equal(t, []string{"B", "D"}, intersect(declaradas, row))
	assert.Empty(t, intersect(declaradas, map[string]interface{}{"X": 1}))
}

func TestInsertQuery(t *testing.T) {
	query := insertQuery("kpi_comisiones", []string{"Ejecutivo", "Mes"})
	assert.Equal(t, "INSERT INTO kpi_comisiones (Ejecutivo, Mes) VALUES (:Ejecutivo, :Mes)", query)
}

func TestColumnasCubrenTablasConocidas(t *testing.T) {
	for _, tabla := range []string{TablaAcumulado, TablaPagos, TablaDevoluciones, TablaKPI, TablaComisiones} {
		assert.NotEmpty(t, Columnas[tabla], "tabla=%s", tabla)
	}
}
