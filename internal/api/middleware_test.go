package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
}

func TestCorsMiddleware(t *testing.T) {
	tests := []struct {
		method   string
		wantCode int
		wantBody string
	}{
		{method: "GET", wantCode: http.StatusOK, wantBody: "ok"},
		{method: "DELETE", wantCode: http.StatusOK, wantBody: "ok"},
		{method: "OPTIONS", wantCode: http.StatusNoContent, wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			corsMiddleware(okHandler("ok")).ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/v1/restores/abc", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

type logLine struct {
	Level  string `json:"level"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Status int    `json:"status"`
	Bytes  int    `json:"bytes"`
}

func captureRequestLog(t *testing.T, handler http.Handler, req *http.Request) (logLine, bool) {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer slog.SetDefault(previous)

	loggingMiddleware(handler).ServeHTTP(httptest.NewRecorder(), req)

	if buf.Len() == 0 {
		return logLine{}, false
	}
	var line logLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line, true
}

func TestLoggingMiddleware(t *testing.T) {
	line, ok := captureRequestLog(t, okHandler(`{"success":true}`),
		httptest.NewRequest("POST", "/api/v1/restores", nil))

	require.True(t, ok)
	assert.Equal(t, "INFO", line.Level)
	assert.Equal(t, "POST", line.Method)
	assert.Equal(t, "/api/v1/restores", line.Path)
	assert.Equal(t, http.StatusOK, line.Status)
	assert.Equal(t, len(`{"success":true}`), line.Bytes)
}

func TestLoggingMiddleware_Levels(t *testing.T) {
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	missing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	// Routine polling of the status endpoint stays below info.
	_, ok := captureRequestLog(t, okHandler("{}"), httptest.NewRequest("GET", "/api/v1/status", nil))
	assert.False(t, ok)

	_, ok = captureRequestLog(t, okHandler("{}"), httptest.NewRequest("GET", "/api/v1/status/history", nil))
	assert.False(t, ok)

	line, ok := captureRequestLog(t, failing, httptest.NewRequest("GET", "/api/v1/status", nil))
	require.True(t, ok)
	assert.Equal(t, "ERROR", line.Level)
	assert.Equal(t, http.StatusBadGateway, line.Status)

	line, ok = captureRequestLog(t, missing, httptest.NewRequest("GET", "/api/v1/restores/nope", nil))
	require.True(t, ok)
	assert.Equal(t, "INFO", line.Level)
	assert.Equal(t, http.StatusNotFound, line.Status)
}

func TestJsonContentTypeMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	jsonContentTypeMiddleware(okHandler(`{"status":"ok"}`)).ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/health", nil))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"ok"}`, rec.Body.String())
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.Write([]byte("abc"))
	rw.Write([]byte("de"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.Equal(t, 5, rw.bytes)

	rec = httptest.NewRecorder()
	rw = &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	rw.WriteHeader(http.StatusConflict)
	assert.Equal(t, http.StatusConflict, rw.statusCode)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	// One token, never refilled.
	middleware := rateLimitMiddleware(rate.NewLimiter(0, 1))(handler)

	rec := httptest.NewRecorder()
	middleware.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	middleware.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/status", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"success":false,"error":"Rate limit exceeded"}`, rec.Body.String())

	assert.Equal(t, 1, calls)
}
