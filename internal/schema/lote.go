package schema

import (
	"andescapital/cxc-etl/internal/logging"
)

// maxErroresLog bounds how many per-record validation errors a batch logs
// before collapsing into a total count.
const maxErroresLog = 3

// ValidarLote validates a batch of raw records with the given validator.
// Malformed records are dropped; the first few errors are logged verbatim
// plus a total count. A batch yielding no valid record logs a warning and
// returns an empty slice — downstream stages handle empty input, so this
// is not an error.
func ValidarLote[T any](raws []map[string]interface{}, kind string, logger logging.Logger, validar func(Raw) (T, error)) []T {
	valid := make([]T, 0, len(raws))
	errCount := 0

	for i, raw := range raws {
		record, err := validar(Raw(raw))
		if err != nil {
			errCount++
			if errCount <= maxErroresLog {
				logger.WithError(err).Warn("registro inválido descartado",
					logging.F("kind", kind),
					logging.F("index", i))
			}
			continue
		}
		valid = append(valid, record)
	}

	if errCount > 0 {
		logger.Warn("lote validado con errores",
			logging.F("kind", kind),
			logging.F("valid", len(valid)),
			logging.F("invalid", errCount))
	}
	if len(valid) == 0 && len(raws) > 0 {
		logger.Warn("lote sin registros válidos",
			logging.F("kind", kind),
			logging.F("total", len(raws)))
	}

	return valid
}
