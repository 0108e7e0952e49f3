// Package observability is the logging, metrics and tracing facade used by the
// media event layer. Event managers never talk to a concrete backend; they are
// handed an Observability and pick the Logger, Metrics and Tracer out of it.
//
// Backends live in sub-packages: noop (default), fake (tests), otel (OTLP
// export), prom (Prometheus registry) and zaplog (zap console logging).
package observability

import "time"

// Observability groups the three instrumentation surfaces.
type Observability interface {
	Tracer() Tracer
	Logger() Logger
	Metrics() Metrics
}

// Compose bundles backends of different kinds into one Observability, e.g. a
// zap Logger with Prometheus Metrics. None of the arguments may be nil.
func Compose(tracer Tracer, logger Logger, metrics Metrics) Observability {
	return composed{tracer: tracer, logger: logger, metrics: metrics}
}

type composed struct {
	tracer  Tracer
	logger  Logger
	metrics Metrics
}

func (c composed) Tracer() Tracer   { return c.tracer }
func (c composed) Logger() Logger   { return c.logger }
func (c composed) Metrics() Metrics { return c.metrics }

// Field represents a key-value pair for structured logging and tracing attributes.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a uint64 field. Registration tokens are logged with it.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Error creates an error field.
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with any value type.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}
