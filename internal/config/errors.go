package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing token sign key or an unknown
	// log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty listen address or
	// non-positive timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLimiterConfigs indicates a non-positive limit or window.
	ErrInvalidLimiterConfigs = errors.New("invalid limiter configuration")
	// ErrInvalidVaultConfigs indicates an empty salt or too few KDF rounds.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
)
