package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bot/internal/ratelimit"
)

var (
	ErrDuplicateAccount = errors.New("account already exists")
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("credential store unavailable")
	ErrEncryption       = errors.New("could not encrypt secret")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ErrRateLimited is re-exported so transports need not import ratelimit.
var ErrRateLimited = ratelimit.ErrRateLimited

// RateLimitedError is returned by the rate limiting wrappers. It matches
// [ErrRateLimited] with errors.Is.
type RateLimitedError struct {
	// RetryAfter is how long the caller should wait. Zero when unknown.
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter <= 0 {
		return ErrRateLimited.Error()
	}
	return fmt.Sprintf("%s: retry after %s", ErrRateLimited, e.RetryAfter.Round(time.Second))
}

func (e *RateLimitedError) Unwrap() error {
	return ErrRateLimited
}
