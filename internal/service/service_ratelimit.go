package service

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/ratelimit"
	"github.com/MKhiriev/go-pass-bot/models"
)

// retryAdvisor is implemented by limiters that can tell how long a refused
// identity has to wait.
type retryAdvisor interface {
	RetryAfter(identity string) time.Duration
}

// rateGate is shared by the vault and generator wrappers so that one user
// draws from a single budget across both surfaces.
type rateGate struct {
	limiter ratelimit.Limiter
	logger  *logger.Logger
}

func (g rateGate) check(userID int64) error {
	identity := strconv.FormatInt(userID, 10)
	if g.limiter.Allow(identity) {
		return nil
	}

	rlErr := &RateLimitedError{}
	if advisor, ok := g.limiter.(retryAdvisor); ok {
		rlErr.RetryAfter = advisor.RetryAfter(identity)
	}

	g.logger.Warn().Int64("user_id", userID).Dur("retry_after", rlErr.RetryAfter).Msg("request rate limited")
	return rlErr
}

// VaultRateLimitService refuses vault calls of users that exceeded their
// request budget. Refused calls never reach the wrapped service.
type VaultRateLimitService struct {
	inner VaultService
	gate  rateGate
}

func NewVaultRateLimitService(limiter ratelimit.Limiter, logger *logger.Logger) VaultServiceWrapper {
	return &VaultRateLimitService{gate: rateGate{limiter: limiter, logger: logger}}
}

func (r *VaultRateLimitService) Save(ctx context.Context, userID int64, account, secret string) error {
	if err := r.gate.check(userID); err != nil {
		return err
	}
	return r.inner.Save(ctx, userID, account, secret)
}

func (r *VaultRateLimitService) List(ctx context.Context, userID int64) ([]models.Credential, error) {
	if err := r.gate.check(userID); err != nil {
		return nil, err
	}
	return r.inner.List(ctx, userID)
}

func (r *VaultRateLimitService) DeleteAll(ctx context.Context, userID int64) error {
	if err := r.gate.check(userID); err != nil {
		return err
	}
	return r.inner.DeleteAll(ctx, userID)
}

func (r *VaultRateLimitService) Exists(ctx context.Context, userID int64, account string) (bool, error) {
	if err := r.gate.check(userID); err != nil {
		return false, err
	}
	return r.inner.Exists(ctx, userID, account)
}

func (r *VaultRateLimitService) Wrap(wrapped VaultService) VaultService {
	r.inner = wrapped
	return r
}

// GeneratorRateLimitService gates password generation per user.
type GeneratorRateLimitService struct {
	inner GeneratorService
	gate  rateGate
}

func NewGeneratorRateLimitService(limiter ratelimit.Limiter, logger *logger.Logger) GeneratorServiceWrapper {
	return &GeneratorRateLimitService{gate: rateGate{limiter: limiter, logger: logger}}
}

func (r *GeneratorRateLimitService) Generate(ctx context.Context, req models.GenerateRequest) ([]string, error) {
	if err := r.gate.check(req.UserID); err != nil {
		return nil, err
	}
	return r.inner.Generate(ctx, req)
}

// Policies is static metadata and is not counted against the budget.
func (r *GeneratorRateLimitService) Policies(ctx context.Context) []models.PolicyInfo {
	return r.inner.Policies(ctx)
}

func (r *GeneratorRateLimitService) Wrap(wrapped GeneratorService) GeneratorService {
	r.inner = wrapped
	return r
}
