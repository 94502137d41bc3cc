// Package erp owns the session lifecycle against the external 1C system.
// Everything above this package sees only the narrow Driver/Session/Rows
// contract; the COM specifics stay in the driver implementations.
package erp

import "context"

// Driver opens sessions against the external system. Implementations:
// comv8 (real COM connector, Windows only) and memdriver (tests, demo mode).
type Driver interface {
	Open(ctx context.Context, connString string) (Session, error)
}

// Session is one live connection to the external system. The v8.3 COM
// apartment does not tolerate concurrent calls on a single connection, so
// implementations must serialize Query internally.
type Session interface {
	// Query executes a parameterized query and returns a forward-only row
	// cursor. Parameter names match the placeholders in the query text.
	Query(ctx context.Context, text string, params map[string]any) (Rows, error)
	Close() error
}

// Rows iterates a query result. Field values are fetched by the external
// system's column identifier. Next returning false can mean either an
// exhausted cursor or a failed advance; callers must check Err before
// treating the result as empty.
type Rows interface {
	Next() bool
	Err() error
	Value(field string) (any, error)
	Close() error
}
