package cod

import "errors"

var (
	ErrInvalidCodID          = errors.New("invalid cod transaction id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrMissingIdempotencyKey = errors.New("missing idempotency key")
	ErrMissingReason         = errors.New("missing failure reason")

	ErrCodNotFound          = errors.New("cod transaction not found")
	ErrDuplicateRequest     = errors.New("duplicate request")
	ErrInvalidCodTransition = errors.New("cod status transition not allowed")
	ErrNothingToSubmit      = errors.New("no collected transactions to submit")
	ErrNothingToReceive     = errors.New("no submitted transactions to receive")
)
