package config

import (
	"time"

	"github.com/MKhiriev/go-pass-bot/internal/crypto"
	"github.com/MKhiriev/go-pass-bot/internal/ratelimit"
)

// Defaults returns the configuration used for every field no source set.
// TokenSignKey has no default and must always be provided.
func Defaults() StructuredConfig {
	return StructuredConfig{
		App: App{
			TokenIssuer:   "go-pass-bot",
			TokenDuration: time.Hour,
			Version:       "dev",
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "passwords.db",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Limiter: Limiter{
			MaxRequests: ratelimit.DefaultMaxRequests,
			Window:      ratelimit.DefaultWindow,
		},
		Vault: Vault{
			KDFSalt:       crypto.DefaultSalt,
			KDFIterations: crypto.DefaultIterations,
		},
	}
}

// Supported values of [DB.Driver].
const (
	DriverSQLite       = "sqlite3"
	DriverSQLitePureGo = "sqlite"
	DriverPostgres     = "pgx"
)
