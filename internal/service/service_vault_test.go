package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-bot/internal/crypto"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/mock"
	"github.com/MKhiriev/go-pass-bot/internal/store"
	"github.com/MKhiriev/go-pass-bot/models"
)

var testKey = crypto.Key{1, 2, 3}

func newTestVault(t *testing.T, ctrl *gomock.Controller) (
	*vaultService,
	*mock.MockCredentialRepository,
	*mock.MockKeyDeriver,
	*mock.MockCipher,
) {
	t.Helper()
	repo := mock.NewMockCredentialRepository(ctrl)
	keys := mock.NewMockKeyDeriver(ctrl)
	cipher := mock.NewMockCipher(ctrl)

	svc := NewVaultService(repo, keys, cipher, logger.Nop()).(*vaultService)
	return svc, repo, keys, cipher
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestVaultService_Save_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, keys, cipher := newTestVault(t, ctrl)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return now }

	gomock.InOrder(
		repo.EXPECT().Exists(ctx, int64(42), "mail").Return(false, nil),
		keys.EXPECT().KeyFor(int64(42)).Return(testKey),
		cipher.EXPECT().Encrypt("p@ss1", testKey).Return("token", nil),
		repo.EXPECT().Insert(ctx, models.CredentialRecord{
			UserID:          42,
			Account:         "mail",
			EncryptedSecret: "token",
			CreatedAt:       now,
		}).Return(int64(1), nil),
	)

	err := svc.Save(ctx, 42, "mail", "p@ss1")
	require.NoError(t, err)
	assert.Zero(t, svc.locks.size(), "lock entry must be released")
}

func TestVaultService_Save_DuplicateFromPreCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestVault(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Exists(ctx, int64(42), "acme").Return(true, nil)
	// no encryption and no insert expected

	err := svc.Save(ctx, 42, "acme", "p2")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
	assert.Equal(t, KindCaller, Classify(err))
}

func TestVaultService_Save_DuplicateFromUniqueIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, keys, cipher := newTestVault(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Exists(ctx, int64(7), "acme").Return(false, nil)
	keys.EXPECT().KeyFor(int64(7)).Return(testKey)
	cipher.EXPECT().Encrypt("s", testKey).Return("token", nil)
	repo.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), store.ErrAccountAlreadyExists)

	err := svc.Save(ctx, 7, "acme", "s")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestVaultService_Save_StoreFailures(t *testing.T) {
	dbErr := errors.New("database is closed")

	t.Run("exists fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _, _ := newTestVault(t, ctrl)

		repo.EXPECT().Exists(gomock.Any(), int64(1), "a").Return(false, dbErr)

		err := svc.Save(context.Background(), 1, "a", "s")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, KindTransient, Classify(err))
	})

	t.Run("insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, keys, cipher := newTestVault(t, ctrl)

		repo.EXPECT().Exists(gomock.Any(), int64(1), "a").Return(false, nil)
		keys.EXPECT().KeyFor(int64(1)).Return(testKey)
		cipher.EXPECT().Encrypt("s", testKey).Return("token", nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), dbErr)

		err := svc.Save(context.Background(), 1, "a", "s")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestVaultService_Save_EncryptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, keys, cipher := newTestVault(t, ctrl)

	repo.EXPECT().Exists(gomock.Any(), int64(1), "a").Return(false, nil)
	keys.EXPECT().KeyFor(int64(1)).Return(testKey)
	cipher.EXPECT().Encrypt("s", testKey).Return("", crypto.ErrEncryption)

	err := svc.Save(context.Background(), 1, "a", "s")
	assert.ErrorIs(t, err, ErrEncryption)
	assert.Equal(t, KindInternal, Classify(err))
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestVaultService_List_PartialDecryptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, keys, cipher := newTestVault(t, ctrl)
	ctx := context.Background()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	records := []models.CredentialRecord{
		{ID: 1, UserID: 5, Account: "a", EncryptedSecret: "t1", CreatedAt: created},
		{ID: 2, UserID: 5, Account: "b", EncryptedSecret: "corrupted", CreatedAt: created},
		{ID: 3, UserID: 5, Account: "c", EncryptedSecret: "t3", CreatedAt: created},
	}

	repo.EXPECT().ListByUser(ctx, int64(5)).Return(records, nil)
	keys.EXPECT().KeyFor(int64(5)).Return(testKey).Times(1)
	cipher.EXPECT().Decrypt("t1", testKey).Return("one", nil)
	cipher.EXPECT().Decrypt("corrupted", testKey).Return("", crypto.ErrDecryption)
	cipher.EXPECT().Decrypt("t3", testKey).Return("three", nil)

	got, err := svc.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, models.Credential{Account: "a", Secret: "one", CreatedAt: created}, got[0])
	assert.Equal(t, models.Credential{Account: "b", Secret: models.DecryptionFailedMarker, CreatedAt: created, DecryptionFailed: true}, got[1])
	assert.Equal(t, models.Credential{Account: "c", Secret: "three", CreatedAt: created}, got[2])
}

func TestVaultService_List_EmptySkipsKeyDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestVault(t, ctrl)

	repo.EXPECT().ListByUser(gomock.Any(), int64(5)).Return(nil, nil)

	got, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestVaultService_List_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestVault(t, ctrl)

	repo.EXPECT().ListByUser(gomock.Any(), int64(5)).Return(nil, store.ErrExecutingQuery)

	got, err := svc.List(context.Background(), 5)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── DeleteAll / Exists ───────────────────────────────────────────────────────

func TestVaultService_DeleteAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestVault(t, ctrl)

	repo.EXPECT().DeleteAllByUser(gomock.Any(), int64(9)).Return(int64(3), nil)

	require.NoError(t, svc.DeleteAll(context.Background(), 9))
	assert.Zero(t, svc.locks.size())
}

func TestVaultService_DeleteAll_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestVault(t, ctrl)

	repo.EXPECT().DeleteAllByUser(gomock.Any(), int64(9)).Return(int64(0), store.ErrExecutingStatement)

	err := svc.DeleteAll(context.Background(), 9)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestVaultService_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _, _ := newTestVault(t, ctrl)

	repo.EXPECT().Exists(gomock.Any(), int64(9), "mail").Return(true, nil)
	repo.EXPECT().Exists(gomock.Any(), int64(9), "bank").Return(false, nil)

	exists, err := svc.Exists(context.Background(), 9, "mail")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(context.Background(), 9, "bank")
	require.NoError(t, err)
	assert.False(t, exists)
}
