package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-bot/internal/generator"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/mock"
	"github.com/MKhiriev/go-pass-bot/internal/validators"
	"github.com/MKhiriev/go-pass-bot/models"
)

func newValidatedVault(t *testing.T) (VaultService, *mock.MockCredentialRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCredentialRepository(ctrl)
	keys := mock.NewMockKeyDeriver(ctrl)
	cipher := mock.NewMockCipher(ctrl)

	inner := NewVaultService(repo, keys, cipher, logger.Nop())
	return NewVaultValidationService().Wrap(inner), repo
}

func TestVaultValidationService_RejectsBeforeSideEffects(t *testing.T) {
	// the mocks carry no expectations: any call into the store fails the test
	svc, _ := newValidatedVault(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name:    "save with zero user",
			call:    func() error { return svc.Save(ctx, 0, "mail", "s") },
			wantErr: validators.ErrInvalidUserID,
		},
		{
			name:    "save with blank account",
			call:    func() error { return svc.Save(ctx, 1, "   ", "s") },
			wantErr: validators.ErrEmptyAccount,
		},
		{
			name:    "save with empty secret",
			call:    func() error { return svc.Save(ctx, 1, "mail", "") },
			wantErr: validators.ErrEmptySecret,
		},
		{
			name:    "save with oversized secret",
			call:    func() error { return svc.Save(ctx, 1, "mail", strings.Repeat("x", validators.MaxSecretBytes+1)) },
			wantErr: validators.ErrSecretTooLong,
		},
		{
			name:    "exists with empty account",
			call:    func() error { _, err := svc.Exists(ctx, 1, ""); return err },
			wantErr: validators.ErrEmptyAccount,
		},
		{
			name:    "list with negative user",
			call:    func() error { _, err := svc.List(ctx, -3); return err },
			wantErr: validators.ErrInvalidUserID,
		},
		{
			name:    "delete with zero user",
			call:    func() error { return svc.DeleteAll(ctx, 0) },
			wantErr: validators.ErrInvalidUserID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, KindCaller, Classify(err))
		})
	}
}

func TestVaultValidationService_PassesValidInput(t *testing.T) {
	svc, repo := newValidatedVault(t)

	repo.EXPECT().Exists(gomock.Any(), int64(1), "mail").Return(true, nil)

	exists, err := svc.Exists(context.Background(), 1, "mail")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGeneratorValidationService(t *testing.T) {
	svc := NewGeneratorValidationService().Wrap(NewGeneratorService(generator.New(), logger.Nop()))

	_, err := svc.Generate(context.Background(), models.GenerateRequest{UserID: 0, Policy: "simple"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	_, err = svc.Generate(context.Background(), models.GenerateRequest{UserID: 1, Policy: "strong", Length: 200})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, generator.ErrInvalidLength)

	passwords, err := svc.Generate(context.Background(), models.GenerateRequest{UserID: 1, Policy: "simple"})
	require.NoError(t, err)
	assert.Len(t, passwords, generator.DefaultCount)

	assert.Len(t, svc.Policies(context.Background()), 3)
}
