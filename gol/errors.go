package gol

import "fmt"

// ConfigError reports a missing or malformed run parameter. Nothing is
// allocated or started when one is returned.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// WorkerError is a fault inside a worker's row processing. It aborts the
// whole run: the generation it happened in is never swapped in.
type WorkerError struct {
	Generation int
	Worker     int
	Row        int
	Cause      error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d failed on row %d of generation %d: %v", e.Worker, e.Row, e.Generation, e.Cause)
}

func (e *WorkerError) Unwrap() error {
	return e.Cause
}
