package rfq

import "errors"

// Every mutating entry point fails with exactly one of these kinds.
// A failed call leaves no state behind.
var (
	ErrNotFound       = errors.New("rfq: unknown request or bid")
	ErrUnauthorized   = errors.New("rfq: caller is not the required party")
	ErrInvalidState   = errors.New("rfq: operation not legal for current status")
	ErrExpired        = errors.New("rfq: time window elapsed")
	ErrInvalidAmount  = errors.New("rfq: amount must be positive")
	ErrTransferFailed = errors.New("rfq: custody transfer rejected")
	ErrAlreadySettled = errors.New("rfq: funds already withdrawn")
)
