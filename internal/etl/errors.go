package etl

import "fmt"

// Pipeline step kinds, recorded on failures so callers can tell a source
// outage from a persistence problem.
const (
	PasoFetch     = "fetch"
	PasoValidar   = "validar"
	PasoCalcular  = "calcular"
	PasoPersistir = "persistir"
)

// RunError wraps a pipeline failure with the step and dataset it
// happened on.
type RunError struct {
	Paso    string
	Dataset string
	Err     error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("etl: %s %s: %v", e.Paso, e.Dataset, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

func fallo(paso, dataset string, err error) error {
	return &RunError{Paso: paso, Dataset: dataset, Err: err}
}
