// Package ports defines the contracts between the application core and its
// adapters. The core depends only on these interfaces; concrete engine and
// metrics implementations live under pkg/adapters.
package ports

import (
	"context"
	"fmt"
	"time"
)

// Row is a single result row from the inference engine. Columns preserves the
// engine's column order; Values maps column name to value.
type Row struct {
	Columns []string
	Values  map[string]interface{}
}

// Parameter is a named query parameter. The Go type of Value carries the
// engine type (int64, string, float64).
type Parameter struct {
	Name  string
	Value interface{}
}

// InferenceEngine executes parameterized queries against the remote managed
// model service.
type InferenceEngine interface {
	// Query runs sql with the given bound parameters and returns all rows.
	Query(ctx context.Context, sql string, params []Parameter) ([]Row, error)

	// SelfTest runs a trivial query to verify connectivity and permissions.
	SelfTest(ctx context.Context) (Row, error)

	// Close releases the underlying client.
	Close() error
}

// MetricsCollector records per-request observability signals.
type MetricsCollector interface {
	// IncRequest increments the request counter for the status/route pair.
	IncRequest(status int, route string)

	// ObserveLatency records one request latency sample.
	ObserveLatency(d time.Duration)
}

// EngineErrorKind categorizes failures reported by the inference engine.
type EngineErrorKind string

const (
	// EngineErrorBadRequest means the engine rejected the query itself.
	EngineErrorBadRequest EngineErrorKind = "bad_request"
	// EngineErrorAPI covers other errors returned by the engine API
	// (authorization, quota, server side failures).
	EngineErrorAPI EngineErrorKind = "api_error"
	// EngineErrorUnavailable covers transport level failures where no engine
	// response was received.
	EngineErrorUnavailable EngineErrorKind = "unavailable"
)

// EngineError wraps an inference engine failure with its kind.
type EngineError struct {
	Kind EngineErrorKind
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("inference engine %s: %v", e.Kind, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
