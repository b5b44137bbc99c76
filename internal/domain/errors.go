package domain

import "errors"

var (
	// ErrCurrencyUnsupported and ErrWindowUnsupported mark configuration
	// errors at the call site; unlike upstream failures they are never
	// swallowed.
	ErrCurrencyUnsupported = errors.New("currency not supported")
	ErrWindowUnsupported   = errors.New("window preset not supported")

	// ErrQuoteUnavailable wraps every expected bank-upstream failure
	// (timeout, bad status, parse failure, row not listed today).
	ErrQuoteUnavailable = errors.New("bank quote unavailable")
)
