package etl

import (
	"github.com/shopspring/decimal"

	"andescapital/cxc-etl/internal/models"
)

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func filasAcumulado(records []models.AcumuladoDIM) []map[string]interface{} {
	out := make([]map[string]interface{}, len(records))
	for i, r := range records {
		out[i] = r.Row()
	}
	return out
}

func filasPagos(records []models.Pago) []map[string]interface{} {
	out := make([]map[string]interface{}, len(records))
	for i, r := range records {
		out[i] = r.Row()
	}
	return out
}

func filasDevoluciones(records []models.Devolucion) []map[string]interface{} {
	out := make([]map[string]interface{}, len(records))
	for i, r := range records {
		out[i] = r.Row()
	}
	return out
}

func filasKPI(records []models.KPI) []map[string]interface{} {
	out := make([]map[string]interface{}, len(records))
	for i, r := range records {
		out[i] = r.Row()
	}
	return out
}

func filasComisiones(records []models.Comision) []map[string]interface{} {
	out := make([]map[string]interface{}, len(records))
	for i, r := range records {
		out[i] = r.Row()
	}
	return out
}
