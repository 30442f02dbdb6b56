// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-bot/internal/crypto"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/store"
	"github.com/MKhiriev/go-pass-bot/models"
)

type vaultService struct {
	credentialRepository store.CredentialRepository
	keys                 crypto.KeyDeriver
	cipher               crypto.Cipher

	locks *userLocks
	now   func() time.Time

	logger *logger.Logger
}

// NewVaultService builds the core [VaultService]. It performs no input
// validation or rate limiting; compose it with the wrappers for that.
func NewVaultService(repo store.CredentialRepository, keys crypto.KeyDeriver, cipher crypto.Cipher, logger *logger.Logger) VaultService {
	return &vaultService{
		credentialRepository: repo,
		keys:                 keys,
		cipher:               cipher,
		locks:                newUserLocks(),
		now:                  time.Now,
		logger:               logger,
	}
}

// Save holds the user's lock across the existence check and the insert.
// The unique index still decides when several processes share one store.
func (v *vaultService) Save(ctx context.Context, userID int64, account, secret string) error {
	unlock := v.locks.lock(userID)
	defer unlock()

	exists, err := v.credentialRepository.Exists(ctx, userID, account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if exists {
		return ErrDuplicateAccount
	}

	encrypted, err := v.cipher.Encrypt(secret, v.keys.KeyFor(userID))
	if err != nil {
		v.logger.Err(err).Str("func", "*vaultService.Save").Int64("user_id", userID).Msg("encryption failed")
		return fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	id, err := v.credentialRepository.Insert(ctx, models.CredentialRecord{
		UserID:          userID,
		Account:         account,
		EncryptedSecret: encrypted,
		CreatedAt:       v.now(),
	})
	if errors.Is(err, store.ErrAccountAlreadyExists) {
		return ErrDuplicateAccount
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	v.logger.Debug().Int64("user_id", userID).Int64("record_id", id).Msg("credential saved")
	return nil
}

func (v *vaultService) List(ctx context.Context, userID int64) ([]models.Credential, error) {
	records, err := v.credentialRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	credentials := make([]models.Credential, 0, len(records))
	if len(records) == 0 {
		return credentials, nil
	}

	key := v.keys.KeyFor(userID)
	for _, rec := range records {
		credential := models.Credential{
			Account:   rec.Account,
			CreatedAt: rec.CreatedAt,
		}

		secret, err := v.cipher.Decrypt(rec.EncryptedSecret, key)
		if err != nil {
			v.logger.Warn().Err(err).
				Str("func", "*vaultService.List").
				Int64("user_id", userID).
				Int64("record_id", rec.ID).
				Msg("record could not be decrypted")
			credential.Secret = models.DecryptionFailedMarker
			credential.DecryptionFailed = true
		} else {
			credential.Secret = secret
		}

		credentials = append(credentials, credential)
	}

	return credentials, nil
}

func (v *vaultService) DeleteAll(ctx context.Context, userID int64) error {
	unlock := v.locks.lock(userID)
	defer unlock()

	deleted, err := v.credentialRepository.DeleteAllByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	v.logger.Info().Int64("user_id", userID).Int64("deleted", deleted).Msg("credentials deleted")
	return nil
}

func (v *vaultService) Exists(ctx context.Context, userID int64, account string) (bool, error) {
	exists, err := v.credentialRepository.Exists(ctx, userID, account)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return exists, nil
}
