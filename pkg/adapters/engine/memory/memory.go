package memory

import (
	"context"
	"sync"

	"github.com/feiyannw/used-car-pricing/pkg/ports"
)

// Engine implements ports.InferenceEngine with canned results.
// This is for testing purposes only.
type Engine struct {
	mu sync.Mutex

	rows []ports.Row
	err  error

	lastSQL    string
	lastParams []ports.Parameter
	queries    int
}

// NewEngine creates a new in-memory engine
func NewEngine() *Engine {
	return &Engine{}
}

// SetResult sets the rows returned by subsequent queries
func (e *Engine) SetResult(rows []ports.Row) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rows = rows
	e.err = nil
}

// SetError makes subsequent queries fail with err
func (e *Engine) SetError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.err = err
}

// Query records the query and returns the configured result
func (e *Engine) Query(ctx context.Context, sql string, params []ports.Parameter) ([]ports.Row, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastSQL = sql
	e.lastParams = append([]ports.Parameter(nil), params...)
	e.queries++

	if e.err != nil {
		return nil, e.err
	}
	return e.rows, nil
}

// SelfTest returns a single {ok: 1} row, or the configured error
func (e *Engine) SelfTest(ctx context.Context) (ports.Row, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.err != nil {
		return ports.Row{}, e.err
	}
	return ports.Row{
		Columns: []string{"ok"},
		Values:  map[string]interface{}{"ok": int64(1)},
	}, nil
}

// Close is a no-op for the in-memory engine
func (e *Engine) Close() error {
	return nil
}

// LastSQL returns the most recently executed query text
func (e *Engine) LastSQL() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastSQL
}

// LastParams returns the parameters bound on the most recent query
func (e *Engine) LastParams() []ports.Parameter {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastParams
}

// Queries returns how many queries have been executed
func (e *Engine) Queries() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.queries
}
