package shortener

import "errors"

var (
	// ErrNotFound is returned when no accessible mapping exists for a code.
	ErrNotFound = errors.New("short url not found")

	// ErrInvalidInput is returned for blank URLs or codes, before any side effect.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCodeTaken is returned by Repository.Save when the code lost a
	// uniqueness race. The service treats it as a retryable collision.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrGenerationExhausted is returned when the generator gives up after
	// the maximum number of collision probes.
	ErrGenerationExhausted = errors.New("unable to generate unique short code")
)
