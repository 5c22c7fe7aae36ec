package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/protrack-api/infrastructure/repository"
	"github.com/vfg2006/protrack-api/internal/config"
	"github.com/vfg2006/protrack-api/internal/usecases/authenticating"
	"github.com/vfg2006/protrack-api/internal/usecases/insighting"
	"github.com/vfg2006/protrack-api/internal/usecases/parsing"
	"github.com/vfg2006/protrack-api/internal/usecases/reporting"
	"golang.org/x/crypto/bcrypt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestHandler(t *testing.T, secret string) http.Handler {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.Auth{Secret: secret, PasswordHash: string(hash), TokenTTL: time.Hour},
		CORS: config.CORS{AllowedOrigins: []string{"http://localhost:5173"}},
	}

	persister := repository.NewMonthlyDataRepository(repository.NewMemoryBlobRepository(), "protrack_monthly_data")
	reporter := reporting.NewService(reporting.NewStore(context.Background(), persister), parsing.NewParser())

	return NewHandler(cfg, reporter, insighting.NewService(nil), authenticating.NewService(cfg.Auth), nil)
}

func serve(handler http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_FluxoAutenticado(t *testing.T) {
	handler := newTestHandler(t, "segredo")

	rec := serve(handler, http.MethodGet, "/v1/months", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(handler, http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(handler, http.MethodPost, "/v1/login", `{"password":"s3nha"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var login map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login["token"])

	rec = serve(handler, http.MethodPost, "/v1/months", `{"month":"2024-03","content":"Alice,10\nBob,5"}`, login["token"])
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(handler, http.MethodGet, "/v1/months/2024-03/insight", "", login["token"])
	require.Equal(t, http.StatusOK, rec.Code)

	var insight map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insight))
	assert.Equal(t, true, insight["fallback"])
	assert.Equal(t, "2024-03", insight["month_id"])
}

func TestHandler_SemSegredoAPIAberta(t *testing.T) {
	handler := newTestHandler(t, "")

	rec := serve(handler, http.MethodGet, "/v1/months", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CronSemRetencao(t *testing.T) {
	handler := newTestHandler(t, "")

	rec := serve(handler, http.MethodPost, "/v1/cron/retention/run", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_PreflightCors(t *testing.T) {
	handler := newTestHandler(t, "segredo")

	req := httptest.NewRequest(http.MethodOptions, "/v1/months", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
