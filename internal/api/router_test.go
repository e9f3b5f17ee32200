package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leon37/NetoLedger/internal/api/controller"
	"github.com/leon37/NetoLedger/internal/api/middleware"
	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
	"github.com/leon37/NetoLedger/internal/model"
	"github.com/leon37/NetoLedger/internal/prompt"
	"github.com/leon37/NetoLedger/internal/repository"
	"github.com/leon37/NetoLedger/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	text  string
	err   error
	calls int
}

func (s *stubProvider) GenerateJSON(context.Context, string, *llm.ResponseSchema) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubAssets struct {
	records []model.AssetRecord
	err     error
	calls   int
}

func (s *stubAssets) FindByUser(context.Context, string) ([]model.AssetRecord, error) {
	s.calls++
	return s.records, s.err
}

func newTestServer(t *testing.T, provider llm.Provider, assets repository.AssetRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prompts, err := prompt.NewBuilder()
	require.NoError(t, err)

	r := NewEngine()
	RegisterRoutes(r,
		controller.NewClassifyController(service.NewClassifyService(provider, prompts, 0)),
		controller.NewNetworthController(service.NewNetworthService(provider, prompts, assets, 0)),
	)
	return r
}

// nilProvider keeps the interface nil so the services run offline.
func nilProvider() llm.Provider { return nil }

func post(t *testing.T, r http.Handler, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return w, got
}

func TestMissingRequiredFieldIsBadRequest(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		wantMsg string
	}{
		{name: "classify without description", path: "/classify", body: `{"locale":"es"}`, wantMsg: "description"},
		{name: "classify blank description", path: "/classify", body: `{"description":"   "}`, wantMsg: "description"},
		{name: "classify empty body", path: "/classify", body: ``},
		{name: "classify not json", path: "/classify", body: `description=Uber`},
		{name: "resume without uid", path: "/networthResume", body: `{"user_question":"¿Cómo voy?"}`, wantMsg: "uid"},
		{name: "resume uid wrong type", path: "/networthResume", body: `{"uid":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{text: `{"resume":"x"}`}
			assets := &stubAssets{}
			r := newTestServer(t, provider, assets)

			w, got := post(t, r, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, got, "error")
			assert.Contains(t, got["error"], tt.wantMsg)
			assert.Equal(t, 0, provider.calls)
			assert.Equal(t, 0, assets.calls)
		})
	}
}

func TestClassifyOfflineIsOK(t *testing.T) {
	r := newTestServer(t, nilProvider(), &stubAssets{})

	w, got := post(t, r, "/classify", `{"description":"Pago en Mercadona"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		"idcategoria":  "OTROS_GASTOS",
		"categoria":    "OTROS_GASTOS",
		"subcategoria": "Otros Gastos Varios",
		"ia_status":    "OFFLINE",
	}, got)
}

func TestClassifyProviderFailureIsOK(t *testing.T) {
	provider := &stubProvider{err: &llm.ProviderError{Provider: "gemini", Err: errors.New("unavailable")}}
	r := newTestServer(t, provider, &stubAssets{})

	w, got := post(t, r, "/classify", `{"description":"Uber"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FAILED", got["ia_status"])
	assert.Equal(t, "OTROS_GASTOS", got["categoria"])
}

func TestClassifySuccessRoundTrip(t *testing.T) {
	provider := &stubProvider{
		text: `{"idcategoria":"TRANSPORTE","categoria":"Transporte","subcategoria":"Combustible/Gasolina"}`,
	}
	r := newTestServer(t, provider, &stubAssets{})

	w, got := post(t, r, "/classify", `{"description":"Repsol 40L","locale":"es"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		"idcategoria":  "TRANSPORTE",
		"categoria":    "Transporte",
		"subcategoria": "Combustible/Gasolina",
		"ia_status":    "SUCCESS",
	}, got)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestResumeStatuses(t *testing.T) {
	tests := []struct {
		name       string
		provider   llm.Provider
		wantCode   int
		wantResume string
		wantStatus string
	}{
		{
			name:       "offline",
			provider:   nilProvider(),
			wantCode:   http.StatusOK,
			wantResume: "ERROR",
			wantStatus: "OFFLINE",
		},
		{
			name:       "success",
			provider:   &stubProvider{text: `{"resume":"Tienes 12.000 € en fondos."}`},
			wantCode:   http.StatusOK,
			wantResume: "Tienes 12.000 € en fondos.",
			wantStatus: "SUCCESS",
		},
		{
			name:       "provider failure",
			provider:   &stubProvider{err: &llm.ProviderError{Provider: "gemini", Err: errors.New("quota")}},
			wantCode:   http.StatusInternalServerError,
			wantResume: "ERROR",
			wantStatus: "FAILED",
		},
		{
			name:       "bad answer",
			provider:   &stubProvider{text: `not json`},
			wantCode:   http.StatusInternalServerError,
			wantResume: "ERROR",
			wantStatus: "FAILED_UNKNOWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assets := &stubAssets{records: []model.AssetRecord{{"userId": "u1", "balance": 12000}}}
			r := newTestServer(t, tt.provider, assets)

			w, got := post(t, r, "/networthResume", `{"uid":"u1","user_question":"¿Cuánto tengo?"}`)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantResume, got["resume"])
			assert.Equal(t, tt.wantStatus, got["ia_status"])
			assert.Equal(t, 1, assets.calls)
		})
	}
}

func TestResumeStoreFailureIsGeneric(t *testing.T) {
	provider := &stubProvider{text: `{"resume":"x"}`}
	assets := &stubAssets{err: errors.New("connection refused 10.0.0.3:27017")}
	r := newTestServer(t, provider, assets)

	w, got := post(t, r, "/networthResume", `{"uid":"u1"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, got, "error")
	assert.NotContains(t, got["error"], "10.0.0.3")
	assert.Equal(t, 0, provider.calls)
}

func TestHealthAndPreflight(t *testing.T) {
	r := newTestServer(t, nilProvider(), &stubAssets{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodOptions, "/classify", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestServer(t, nilProvider(), &stubAssets{})

	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(`{"description":"Netflix"}`))
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}
