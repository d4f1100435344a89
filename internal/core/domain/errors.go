package domain

import "errors"

// Error kinds surfaced by the catalog, ledger and query layers. Callers
// dispatch on these with errors.Is; the wrapped message names the
// offending entity.
var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("constraint violation")
)
