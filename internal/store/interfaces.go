package store

import (
	"context"

	"github.com/MKhiriev/go-pass-bot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository is opaque-blob storage for encrypted credentials.
// It never encrypts or decrypts anything itself.
type CredentialRepository interface {
	// Insert stores rec and returns the new row id. A second row with the
	// same (UserID, Account) fails with [ErrAccountAlreadyExists].
	Insert(ctx context.Context, rec models.CredentialRecord) (int64, error)

	// Exists reports whether userID already has a record labelled account.
	Exists(ctx context.Context, userID int64, account string) (bool, error)

	// ListByUser returns every record of userID ordered by id.
	ListByUser(ctx context.Context, userID int64) ([]models.CredentialRecord, error)

	// DeleteAllByUser removes every record of userID and returns how many
	// rows were deleted.
	DeleteAllByUser(ctx context.Context, userID int64) (int64, error)
}
