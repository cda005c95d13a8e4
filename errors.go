package paykit

import "errors"

var (
	// ErrMissingAPIKey is returned by New when no access token is given.
	ErrMissingAPIKey = errors.New("paykit: API key is required")

	// ErrInvalidEnvironment is returned for an environment other than
	// production or sandbox.
	ErrInvalidEnvironment = errors.New("paykit: invalid environment")

	// ErrNetwork wraps transport failures that persisted through all
	// retry attempts: DNS, connect, or per-attempt timeout errors.
	ErrNetwork = errors.New("paykit: network error")

	// ErrDecode wraps a malformed payload on a success response. Decode
	// failures are never retried; the payload will not get better.
	ErrDecode = errors.New("paykit: failed to decode response")

	// ErrValidation wraps request validation failures detected before any
	// network call is made.
	ErrValidation = errors.New("paykit: invalid request")
)
