package models

import "errors"

var (
	// ErrNotFound marks an empty lookup result. It is a valid outcome, not a
	// failure, and maps to 404 at the HTTP boundary.
	ErrNotFound = errors.New("product not found")

	// ErrUnavailable is returned when no live session to the ERP system
	// exists; maps to 503.
	ErrUnavailable = errors.New("service not initialized")

	// ErrInvalidBarcode marks client input that failed EAN-13 validation;
	// maps to 400 and is never logged above warning.
	ErrInvalidBarcode = errors.New("invalid barcode format")

	// ErrConnectorInit wraps a failure to open the ERP session at startup.
	// Fatal: the process must not report a successful start without a session.
	ErrConnectorInit = errors.New("connector initialization failed")

	// ErrLookupExec wraps any failure while executing the lookup query
	// against an established session; maps to a generic 500.
	ErrLookupExec = errors.New("lookup execution failed")
)
