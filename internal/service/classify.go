package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-bot/internal/crypto"
	"github.com/MKhiriev/go-pass-bot/internal/generator"
)

// ErrorKind tells a transport how to react to an error.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindCaller means the request must be fixed, not retried.
	KindCaller
	// KindTransient means the same request may succeed later.
	KindTransient
	// KindIntegrity means stored data could not be authenticated.
	KindIntegrity
	// KindInternal is everything else.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCaller:
		return "caller"
	case KindTransient:
		return "transient"
	case KindIntegrity:
		return "integrity"
	default:
		return "internal"
	}
}

// Classify maps err onto an [ErrorKind].
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateAccount),
		errors.Is(err, generator.ErrInvalidPolicy),
		errors.Is(err, generator.ErrInvalidLength),
		errors.Is(err, generator.ErrInvalidCount):
		return KindCaller
	case errors.Is(err, ErrRateLimited),
		errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return KindTransient
	case errors.Is(err, crypto.ErrDecryption):
		return KindIntegrity
	default:
		return KindInternal
	}
}
