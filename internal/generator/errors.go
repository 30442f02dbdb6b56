package generator

import "errors"

// Validation errors. They are caller errors: the request must be fixed, not
// retried.
var (
	// ErrInvalidPolicy is returned for an unrecognised policy name.
	ErrInvalidPolicy = errors.New("invalid password policy")

	// ErrInvalidLength is returned when the requested length lies outside
	// the bounds of the policy. Lengths are never clamped.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrInvalidCount is returned when the number of passwords requested
	// is below one or above [MaxCount].
	ErrInvalidCount = errors.New("invalid password count")
)

// ErrRandomSource is returned when the secure random source fails. It is an
// internal fault, not a caller error.
var ErrRandomSource = errors.New("random source failure")
