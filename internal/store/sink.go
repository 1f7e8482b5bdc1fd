package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"andescapital/cxc-etl/internal/logging"
)

// DefaultChunkSize bounds how many rows go into one INSERT statement and
// its surrounding transaction.
const DefaultChunkSize = 1000

// Sink writes the reconciled datasets to their target tables.
type Sink struct {
	db        *sqlx.DB
	chunkSize int
	logger    logging.Logger
}

// NewSink builds a sink over an open connection pool. chunkSize values
// below 1 fall back to DefaultChunkSize.
func NewSink(db *sqlx.DB, chunkSize int, logger logging.Logger) *Sink {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Sink{db: db, chunkSize: chunkSize, logger: logger}
}

// DeleteAndBulkInsertChunked replaces the full contents of a table:
// everything currently in it is deleted, then rows are inserted in chunks
// of at most chunkSize, one transaction per chunk. Row keys outside the
// table's declared column set are dropped; declared columns missing from
// the rows are skipped rather than written as NULL.
func (s *Sink) DeleteAndBulkInsertChunked(ctx context.Context, tabla string, rows []map[string]interface{}) error {
	columnas, ok := Columnas[tabla]
	if !ok {
		return fmt.Errorf("store: tabla desconocida %q", tabla)
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+tabla); err != nil {
		return fmt.Errorf("store: vaciando %s: %w", tabla, err)
	}

	if len(rows) == 0 {
		s.logger.Warn("no hay filas para insertar",
			logging.F("tabla", tabla))
		return nil
	}

	cols := intersect(columnas, rows[0])
	if len(cols) == 0 {
		return fmt.Errorf("store: ninguna columna de %s presente en las filas", tabla)
	}
	query := insertQuery(tabla, cols)

	insertadas := 0
	for _, chunk := range Chunks(rows, s.chunkSize) {
		if err := s.insertChunk(ctx, query, chunk); err != nil {
			return fmt.Errorf("store: insertando en %s tras %d filas: %w", tabla, insertadas, err)
		}
		insertadas += len(chunk)
	}

	s.logger.Info("tabla reemplazada",
		logging.F("tabla", tabla),
		logging.F("filas", insertadas),
		logging.F("columnas", len(cols)))
	return nil
}

func (s *Sink) insertChunk(ctx context.Context, query string, chunk []map[string]interface{}) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.NamedExecContext(ctx, query, chunk); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// intersect keeps the declared columns that actually appear in the row,
// preserving the declared order.
func intersect(columnas []string, row map[string]interface{}) []string {
	out := make([]string, 0, len(columnas))
	for _, col := range columnas {
		if _, ok := row[col]; ok {
			out = append(out, col)
		}
	}
	return out
}

func insertQuery(tabla string, cols []string) string {
	marcadores := make([]string, len(cols))
	for i, col := range cols {
		marcadores[i] = ":" + col
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tabla, strings.Join(cols, ", "), strings.Join(marcadores, ", "))
}

// Chunks splits rows into consecutive slices of at most size elements.
// The result never contains an empty chunk.
func Chunks(rows []map[string]interface{}, size int) [][]map[string]interface{} {
	if size < 1 {
		size = DefaultChunkSize
	}
	var out [][]map[string]interface{}
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		out = append(out, rows[start:end])
	}
	return out
}
