package comisiones

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"andescapital/cxc-etl/internal/models"
)

func TestBuscarActivaTresNiveles(t *testing.T) {
	enero := fecha(2024, time.January, 1)
	promos := NewPromociones().Merge([]models.Promocion{
		nuevaPromocion("C1|P1", "C1", "P1", "Maria Torres", enero),
	})

	// Exact key.
	_, ok := promos.BuscarActiva("C1|P1", "C1", "P1", fecha(2024, time.March, 1), "Maria Torres")
	assert.True(t, ok)

	// Client-only fallback for a new pairing of a known client.
	_, ok = promos.BuscarActiva("C1|P9", "C1", "P9", fecha(2024, time.March, 1), "Maria Torres")
	assert.True(t, ok)

	// Payer-only fallback.
	_, ok = promos.BuscarActiva("C9|P1", "C9", "P1", fecha(2024, time.March, 1), "Maria Torres")
	assert.True(t, ok)

	// Another executive never inherits the promotion.
	_, ok = promos.BuscarActiva("C1|P1", "C1", "P1", fecha(2024, time.March, 1), "Jorge Salazar")
	assert.False(t, ok)
}

func TestPromocionExpiracion(t *testing.T) {
	enero := fecha(2024, time.January, 1)
	promo := nuevaPromocion("C1|P1", "C1", "P1", "Maria Torres", enero)

	// Active through June, expired from July on: the expiry must fall
	// strictly after the month being classified.
	assert.True(t, promo.Activa(fecha(2024, time.June, 1), "Maria Torres"))
	assert.False(t, promo.Activa(fecha(2024, time.July, 1), "Maria Torres"))
}

func TestMergeDevuelveInstanciaNueva(t *testing.T) {
	enero := fecha(2024, time.January, 1)
	base := NewPromociones()

	merged := base.Merge([]models.Promocion{
		nuevaPromocion("C1|P1", "C1", "P1", "Maria Torres", enero),
	})

	require.NotSame(t, base, merged)

	// The original state stays empty.
	_, ok := base.BuscarActiva("C1|P1", "C1", "P1", fecha(2024, time.February, 1), "Maria Torres")
	assert.False(t, ok)
	_, ok = merged.BuscarActiva("C1|P1", "C1", "P1", fecha(2024, time.February, 1), "Maria Torres")
	assert.True(t, ok)
}
