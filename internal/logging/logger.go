// Package logging provides a small logging abstraction so the pipeline
// packages stay decoupled from the concrete logging framework. The
// production implementation is backed by logrus; tests use MockLogger.
package logging

// Logger is the structured logging interface used across the ETL.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field at a call site.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
