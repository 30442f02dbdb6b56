package store

import "github.com/MKhiriev/go-pass-bot/internal/logger"

// Storages aggregates the repositories built on one [DB].
type Storages struct {
	CredentialRepository CredentialRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		CredentialRepository: NewCredentialRepository(db, log),
	}
}
