package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"burpwatch/internal/config"
	"burpwatch/internal/mocks"
	"burpwatch/internal/models"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHandlers struct {
	handlers   *Handlers
	router     *mux.Router
	poller     *mocks.MockStatusPoller
	restores   *mocks.MockRestoreService
	gatekeeper *mocks.MockGatekeeper
	history    *mocks.MockStatusEventRepository
}

func setupTestHandlers(t *testing.T) *testHandlers {
	t.Helper()

	th := &testHandlers{
		poller:     mocks.NewMockStatusPoller(t),
		restores:   mocks.NewMockRestoreService(t),
		gatekeeper: mocks.NewMockGatekeeper(t),
		history:    mocks.NewMockStatusEventRepository(t),
	}

	th.handlers = NewHandlers(config.Default(), Dependencies{
		Poller:     th.poller,
		Restores:   th.restores,
		Gatekeeper: th.gatekeeper,
		History:    th.history,
		Version:    "1.2.3",
	})
	th.router = mux.NewRouter()
	th.handlers.RegisterRoutes(th.router)
	return th
}

func (th *testHandlers) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var response APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	return response
}

func TestNewHandlers(t *testing.T) {
	poller := mocks.NewMockStatusPoller(t)
	restores := mocks.NewMockRestoreService(t)
	cfg := &config.Config{}

	handlers := NewHandlers(cfg, Dependencies{Poller: poller, Restores: restores})

	assert.NotNil(t, handlers)
	assert.Equal(t, cfg, handlers.config)
	assert.Equal(t, poller, handlers.poller)
	assert.Equal(t, restores, handlers.restores)
	assert.Equal(t, "dev", handlers.version)
}

func TestWriteSuccess(t *testing.T) {
	th := setupTestHandlers(t)
	w := httptest.NewRecorder()

	data := map[string]string{"key": "value"}
	th.handlers.writeSuccess(w, 200, data, "Operation successful")

	assert.Equal(t, 200, w.Code)

	response := decodeResponse(t, w)
	assert.True(t, response.Success)
	assert.Equal(t, "Operation successful", response.Message)

	dataMap, ok := response.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "value", dataMap["key"])
}

func TestWriteError(t *testing.T) {
	th := setupTestHandlers(t)

	w := httptest.NewRecorder()
	th.handlers.writeError(w, 500, "Internal server error", errors.New("something went wrong"))
	assert.Equal(t, 500, w.Code)
	response := decodeResponse(t, w)
	assert.False(t, response.Success)
	assert.Equal(t, "Internal server error", response.Error)

	w = httptest.NewRecorder()
	th.handlers.writeError(w, 400, "Bad request", nil)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Bad request", decodeResponse(t, w).Error)
}

func TestAPIResponse_JSONFormat(t *testing.T) {
	tests := []struct {
		name     string
		response APIResponse
		wantJSON string
	}{
		{
			name: "success with data",
			response: APIResponse{
				Success: true,
				Data:    map[string]string{"test": "value"},
				Message: "ok",
			},
			wantJSON: `{"success":true,"data":{"test":"value"},"message":"ok"}`,
		},
		{
			name: "error response",
			response: APIResponse{
				Success: false,
				Error:   "error message",
			},
			wantJSON: `{"success":false,"error":"error message"}`,
		},
		{
			name:     "success without message",
			response: APIResponse{Success: true},
			wantJSON: `{"success":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonBytes, err := json.Marshal(tt.response)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(jsonBytes))
		})
	}
}

func TestRegisterRoutes_MetricsEndpoint(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("# HELP burpwatch_polls_total"))
	})

	router := mux.NewRouter()
	NewHandlers(cfg, Dependencies{Metrics: metrics}).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "burpwatch_polls_total")
}

func TestRegisterRoutes_MetricsDisabled(t *testing.T) {
	cfg := config.Default()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("metrics handler should not be mounted")
	})

	router := mux.NewRouter()
	NewHandlers(cfg, Dependencies{Metrics: metrics}).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterRoutes_AppliesMiddleware(t *testing.T) {
	th := setupTestHandlers(t)

	th.poller.EXPECT().Snapshot().Return(models.StatusSnapshot{Cadence: models.CadenceIdle}).Once()

	rec := th.do(httptest.NewRequest("GET", "/api/v1/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
