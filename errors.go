package fintrack

import "errors"

// Failure taxonomy. Callers match with errors.Is; the calculators never
// recover their own failures, they return them for the boundary to render.
var (
	// ErrInvalidInput marks a numeric field that could not be parsed.
	ErrInvalidInput = errors.New("invalid numeric input")

	// ErrInvalidTerm marks a debt term of zero months, for which an
	// amortized payment is undefined.
	ErrInvalidTerm = errors.New("debt term has no months")

	// ErrInvalidPeriod marks a growth projection over zero periods or an
	// empty invested series.
	ErrInvalidPeriod = errors.New("projection needs a positive period and invested amounts")

	// ErrAuth marks credentials rejected by the exchange. Not retried.
	ErrAuth = errors.New("exchange rejected credentials")

	// ErrNetwork marks a transport-level failure against a remote service.
	ErrNetwork = errors.New("network failure")

	// ErrNotFound marks a symbol with no tradeable pair on the exchange.
	ErrNotFound = errors.New("symbol not found")
)
