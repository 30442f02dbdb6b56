package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-bot/internal/config"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/internal/service"
	"github.com/MKhiriev/go-pass-bot/internal/utils"
	"github.com/MKhiriev/go-pass-bot/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-pass-bot"
)

// ---- Fakes ----

type fakeVault struct {
	saveErr    error
	listResult []models.Credential
	listErr    error
	exists     bool
	existsErr  error
	deleteErr  error

	gotUserID  int64
	gotAccount string
	gotSecret  string
}

func (f *fakeVault) Save(_ context.Context, userID int64, account, secret string) error {
	f.gotUserID, f.gotAccount, f.gotSecret = userID, account, secret
	return f.saveErr
}

func (f *fakeVault) List(_ context.Context, userID int64) ([]models.Credential, error) {
	f.gotUserID = userID
	return f.listResult, f.listErr
}

func (f *fakeVault) DeleteAll(_ context.Context, userID int64) error {
	f.gotUserID = userID
	return f.deleteErr
}

func (f *fakeVault) Exists(_ context.Context, userID int64, account string) (bool, error) {
	f.gotUserID, f.gotAccount = userID, account
	return f.exists, f.existsErr
}

type fakeAppInfo struct{}

func (fakeAppInfo) GetAppVersion(context.Context) string { return "test-version" }

func (fakeAppInfo) GetBuildInfo(context.Context) models.VersionResponse {
	return models.VersionResponse{Version: "test-version", Date: "N/A", Commit: "N/A"}
}

// ---- Helpers ----

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:    config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

func newTestRouter(t *testing.T, services *service.Services) *chi.Mux {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = fakeAppInfo{}
	}
	return NewHandler(services, testConfig(), logger.Nop()).Init()
}

func bearer(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Minute, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func do(t *testing.T, router http.Handler, method, target, body string, userID int64) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != 0 {
		req.Header.Set("Authorization", bearer(t, userID))
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
