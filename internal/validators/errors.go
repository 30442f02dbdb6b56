package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

var (
	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrEmptyAccount   = errors.New("account is required")
	ErrAccountTooLong = errors.New("account is too long")
	ErrInvalidAccount = errors.New("account must be valid UTF-8 without control characters")
	ErrEmptySecret    = errors.New("secret is required")
	ErrSecretTooLong  = errors.New("secret is too long")
)
