package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/utils"
	"github.com/MKhiriev/go-pass-bot/models"
)

const defaultTokenDuration = time.Minute

// Config tells the adapter where the server is and how to sign tokens.
type Config struct {
	// Address is "host:port" or a full base URL.
	Address string

	// TokenSignKey and TokenIssuer must match the server's APP_TOKEN_SIGN_KEY
	// and APP_TOKEN_ISSUER.
	TokenSignKey string
	TokenIssuer  string

	// TokenDuration is the lifetime of each minted token. Zero means one
	// minute.
	TokenDuration time.Duration

	// RequestTimeout bounds one HTTP round trip. Zero keeps the client default.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	signKey       string
	issuer        string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It fails when cfg.Address is empty or not a valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	tokenDuration := cfg.TokenDuration
	if tokenDuration <= 0 {
		tokenDuration = defaultTokenDuration
	}

	return &httpServerAdapter{
		client:        utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: tokenDuration,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a resty request carrying a bearer token for userID.
func (h *httpServerAdapter) request(ctx context.Context, userID int64) (*resty.Request, error) {
	token, err := utils.GenerateJWTToken(h.issuer, userID, h.tokenDuration, h.signKey)
	if err != nil {
		return nil, fmt.Errorf("mint token: %w", err)
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token.SignedString), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) Policies(ctx context.Context) ([]models.PolicyInfo, error) {
	var policies []models.PolicyInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&policies).
		Get("/api/passwords/policies")
	if err != nil {
		return nil, fmt.Errorf("policies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return policies, nil
}

func (h *httpServerAdapter) Generate(ctx context.Context, req models.GenerateRequest) ([]string, error) {
	r, err := h.request(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var generated models.GenerateResponse
	resp, err := r.
		SetBody(req).
		SetResult(&generated).
		Post("/api/passwords/generate")
	if err != nil {
		return nil, fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return generated.Passwords, nil
}

func (h *httpServerAdapter) Save(ctx context.Context, userID int64, account, secret string) error {
	r, err := h.request(ctx, userID)
	if err != nil {
		return err
	}

	resp, err := r.
		SetBody(models.SaveCredentialRequest{Account: account, Secret: secret}).
		Post("/api/credentials")
	if err != nil {
		return fmt.Errorf("save request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int64("user_id", userID).Err(err).Msg("save rejected")
		return err
	}

	return nil
}

// List never returns a nil slice on success.
func (h *httpServerAdapter) List(ctx context.Context, userID int64) ([]models.Credential, error) {
	r, err := h.request(ctx, userID)
	if err != nil {
		return nil, err
	}

	credentials := make([]models.Credential, 0)
	resp, err := r.
		SetResult(&credentials).
		Get("/api/credentials")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return credentials, nil
}

func (h *httpServerAdapter) Exists(ctx context.Context, userID int64, account string) (bool, error) {
	r, err := h.request(ctx, userID)
	if err != nil {
		return false, err
	}

	var exists models.ExistsResponse
	resp, err := r.
		SetQueryParam("account", account).
		SetResult(&exists).
		Get("/api/credentials/exists")
	if err != nil {
		return false, fmt.Errorf("exists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return exists.Exists, nil
}

func (h *httpServerAdapter) DeleteAll(ctx context.Context, userID int64) error {
	r, err := h.request(ctx, userID)
	if err != nil {
		return err
	}

	resp, err := r.Delete("/api/credentials")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}
