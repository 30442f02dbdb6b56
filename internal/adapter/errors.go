package adapter

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("account already exists")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrUnavailable         = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrEmptyAddress = errors.New("empty address")
)

// RateLimitedError carries the Retry-After advice of a 429 response. It
// matches [ErrRateLimited].
type RateLimitedError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter <= 0 {
		return fmt.Sprintf("%s: %s", ErrRateLimited, e.Message)
	}
	return fmt.Sprintf("%s: %s (retry after %s)", ErrRateLimited, e.Message, e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error {
	return ErrRateLimited
}

// IsTransient reports whether repeating the same call later may succeed.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrBadGateway)
}
