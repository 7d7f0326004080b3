package domain

import "errors"

// Error kinds the services signal to the transport layer. Services wrap
// these with fmt.Errorf("%w: ...") so errors.Is still matches after
// context is added.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound marks an absent roster, booking, car or user.
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks an idempotency violation, e.g. paying an
	// already-paid booking, or a lost-update on the wallet ledger.
	ErrConflict = errors.New("conflicting state")
	// ErrInsufficientFunds marks a failed balance check at settlement.
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	// ErrForbidden marks access to a record the caller does not own.
	ErrForbidden = errors.New("permission denied")
)
