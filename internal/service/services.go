package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-bot/internal/config"
	"github.com/MKhiriev/go-pass-bot/internal/crypto"
	"github.com/MKhiriev/go-pass-bot/internal/generator"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/ratelimit"
	"github.com/MKhiriev/go-pass-bot/internal/store"
	"github.com/MKhiriev/go-pass-bot/models"
)

type Services struct {
	VaultService     VaultService
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

// NewServices wires the core services and wraps them, outermost first, in
// rate limiting and validation. Both surfaces share one limiter.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	keys, err := crypto.NewKeyDeriver(cfg.Vault.KDFSalt, cfg.Vault.KDFIterations)
	if err != nil {
		return nil, fmt.Errorf("error creating key deriver: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.NewSlidingWindow(cfg.Limiter.MaxRequests, cfg.Limiter.Window)

	vault := NewVaultService(storages.CredentialRepository, keys, crypto.NewCipher(), logger)
	vault = NewVaultValidationService().Wrap(vault)
	vault = NewVaultRateLimitService(limiter, logger).Wrap(vault)

	gen := NewGeneratorService(generator.New(), logger)
	gen = NewGeneratorValidationService().Wrap(gen)
	gen = NewGeneratorRateLimitService(limiter, logger).Wrap(gen)

	return &Services{
		VaultService:     vault,
		GeneratorService: gen,
		AppInfoService:   appInfo,
	}, nil
}
