package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mortcalc/mortcalc/internal/calculators"
	"github.com/mortcalc/mortcalc/internal/config"
	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/logging"
	"github.com/mortcalc/mortcalc/internal/store"
)

func newTestServer(st store.ScenarioStore) *Server {
	cfg := config.ServerConfig{
		Addr:            ":0",
		RateLimitPerMin: 1000,
		ShutdownTimeout: time.Second,
	}
	return NewServer(calculators.BuiltIn(), st, logging.NopLogger{}, cfg)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListCalculators(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/calculators", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var listed []struct {
		Slug   string `json:"slug"`
		Name   string `json:"name"`
		Fields []struct {
			Key      string `json:"key"`
			Required bool   `json:"required"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, len(calculators.BuiltIn().All()))

	for _, d := range listed {
		assert.NotEmpty(t, d.Slug)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Fields)
	}
}

func TestGetCalculatorUnknownSlug(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/calculators/no-such-calc", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCalculatorDescriptorOnly(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/calculators/mortgage-cost", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Calculator struct {
			Slug string `json:"slug"`
		} `json:"calculator"`
		Result *domain.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mortgage-cost", resp.Calculator.Slug)
	assert.Nil(t, resp.Result)
}

func TestGetCalculatorQueryPrefill(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet,
		"/api/calculators/mortgage-cost?homePrice=450000&downPayment=90000&interestRate=6.75&loanTerm=30", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Params map[string]string `json:"params"`
		Result *domain.Result    `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "450000", resp.Params["homePrice"])
	require.NotNil(t, resp.Result)

	payment, ok := resp.Result.Detail("principalAndInterest")
	require.True(t, ok)
	assert.True(t, payment.Value.IsPositive())
}

func TestPostCalculator(t *testing.T) {
	srv := newTestServer(nil)
	body, err := json.Marshal(map[string]any{
		"params": map[string]string{
			"homePrice":    "450000",
			"downPayment":  "90000",
			"interestRate": "6.75",
			"loanTerm":     "30",
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/calculators/mortgage-cost", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp calcResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mortgage-cost", resp.Calculator)
	require.NotNil(t, resp.Result)
	assert.NotEmpty(t, resp.Result.Details)
}

func TestPostCalculatorMissingRequired(t *testing.T) {
	srv := newTestServer(nil)
	body := []byte(`{"params":{"loanAmount":"300000"}}`)

	req := httptest.NewRequest(http.MethodPost, "/api/calculators/refinance", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Missing, "currentRate")
	assert.Contains(t, resp.Missing, "newRate")
}

func TestPostCalculatorBadBody(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/calculators/mortgage-cost",
		bytes.NewReader([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostCalculatorNullResult(t *testing.T) {
	srv := newTestServer(nil)
	// Required fields present but degenerate, so the engine declines.
	body := []byte(`{"params":{"homePrice":"0","interestRate":"6.75"}}`)

	req := httptest.NewRequest(http.MethodPost, "/api/calculators/mortgage-cost", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["result"]))
}

func TestSessionSaveListClear(t *testing.T) {
	st := store.NewMemoryStore()
	srv := newTestServer(st)

	body := []byte(`{
		"params": {"homePrice":"450000","downPayment":"90000","interestRate":"6.75"},
		"sessionId": "sess-1"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/calculators/mortgage-cost", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/sessions/sess-1", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var saved []store.SavedScenario
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "mortgage-cost", saved[0].Calculator)
	assert.NotNil(t, saved[0].Result)

	req = httptest.NewRequest(http.MethodDelete, "/api/sessions/sess-1", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/sessions/sess-1", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionEndpointsWithoutStore(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/sess-1", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimitExceeded(t *testing.T) {
	cfg := config.ServerConfig{
		Addr:            ":0",
		RateLimitPerMin: 2,
		ShutdownTimeout: time.Second,
	}
	srv := NewServer(calculators.BuiltIn(), nil, logging.NopLogger{}, cfg)
	handler := srv.Handler()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
