package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-bot/internal/validators"
	"github.com/MKhiriev/go-pass-bot/models"
)

// VaultValidationService rejects malformed input before it reaches the
// wrapped [VaultService]. Errors match [ErrValidation] and the underlying
// validators error.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *VaultValidationService) Save(ctx context.Context, userID int64, account, secret string) error {
	req := models.SaveCredentialRequest{UserID: userID, Account: account, Secret: secret}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Save(ctx, userID, account, secret)
}

func (v *VaultValidationService) List(ctx context.Context, userID int64) ([]models.Credential, error) {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.List(ctx, userID)
}

func (v *VaultValidationService) DeleteAll(ctx context.Context, userID int64) error {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.DeleteAll(ctx, userID)
}

func (v *VaultValidationService) Exists(ctx context.Context, userID int64, account string) (bool, error) {
	if err := v.validator.Validate(ctx, models.AccountQuery{UserID: userID, Account: account}); err != nil {
		return false, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Exists(ctx, userID, account)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}

// GeneratorValidationService is the [GeneratorService] counterpart of
// [VaultValidationService].
type GeneratorValidationService struct {
	inner     GeneratorService
	validator validators.Validator
}

func NewGeneratorValidationService() GeneratorServiceWrapper {
	return &GeneratorValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (g *GeneratorValidationService) Generate(ctx context.Context, req models.GenerateRequest) ([]string, error) {
	if err := g.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return g.inner.Generate(ctx, req)
}

func (g *GeneratorValidationService) Policies(ctx context.Context) []models.PolicyInfo {
	return g.inner.Policies(ctx)
}

func (g *GeneratorValidationService) Wrap(wrapped GeneratorService) GeneratorService {
	g.inner = wrapped
	return g
}
