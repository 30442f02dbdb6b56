package service

import (
	"context"

	"github.com/MKhiriev/go-pass-bot/models"
)

// VaultService stores, lists and deletes encrypted credentials of one user
// at a time. User ids come from the authenticated transport.
type VaultService interface {
	// Save encrypts secret and stores it under account. It fails with
	// [ErrDuplicateAccount] when the user already has that account.
	Save(ctx context.Context, userID int64, account, secret string) error

	// List decrypts every record of the user. A record that cannot be
	// decrypted is still returned, marked as failed.
	List(ctx context.Context, userID int64) ([]models.Credential, error)

	// DeleteAll irreversibly removes every record of the user.
	DeleteAll(ctx context.Context, userID int64) error

	// Exists reports whether the user has a record labelled account.
	Exists(ctx context.Context, userID int64, account string) (bool, error)
}

type GeneratorService interface {
	Generate(ctx context.Context, req models.GenerateRequest) ([]string, error)
	Policies(ctx context.Context) []models.PolicyInfo
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validating or rate limiting.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// GeneratorServiceWrapper is the [GeneratorService] counterpart of
// [VaultServiceWrapper].
type GeneratorServiceWrapper interface {
	Wrap(GeneratorService) GeneratorService
}
