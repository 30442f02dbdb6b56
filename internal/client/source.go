package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-bot/internal/adapter"
	"github.com/MKhiriev/go-pass-bot/internal/generator"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/service"
	"github.com/MKhiriev/go-pass-bot/models"
)

// NewSource returns the remote source when cfg.Server is set and the local
// generator otherwise.
func NewSource(cfg Config, logger *logger.Logger) (PasswordSource, error) {
	if cfg.Server == "" {
		return newLocalSource(logger), nil
	}

	if cfg.UserID <= 0 {
		return nil, ErrMissingUserID
	}
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingSignKey
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.Config{
		Address:        cfg.Server,
		TokenSignKey:   cfg.TokenSignKey,
		TokenIssuer:    cfg.TokenIssuer,
		RequestTimeout: cfg.Timeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return newRemoteSource(serverAdapter, cfg.UserID), nil
}

type localSource struct {
	generator service.GeneratorService
}

// newLocalSource uses the bare generator service. There is no chat user on
// the command line, so the user id checks of the validation wrapper do not
// apply; the generator itself still rejects bad policies and bounds.
func newLocalSource(logger *logger.Logger) *localSource {
	return &localSource{generator: service.NewGeneratorService(generator.New(), logger)}
}

func (s *localSource) Generate(ctx context.Context, req models.GenerateRequest) ([]string, error) {
	return s.generator.Generate(ctx, req)
}

func (s *localSource) Policies(ctx context.Context) ([]models.PolicyInfo, error) {
	return s.generator.Policies(ctx), nil
}

// remoteSource acts as one chat user against the credential service.
type remoteSource struct {
	adapter adapter.ServerAdapter
	userID  int64
}

func newRemoteSource(a adapter.ServerAdapter, userID int64) *remoteSource {
	return &remoteSource{adapter: a, userID: userID}
}

func (s *remoteSource) Generate(ctx context.Context, req models.GenerateRequest) ([]string, error) {
	req.UserID = s.userID
	return s.adapter.Generate(ctx, req)
}

func (s *remoteSource) Policies(ctx context.Context) ([]models.PolicyInfo, error) {
	return s.adapter.Policies(ctx)
}
