package burpui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"burpwatch/internal/config"
	"burpwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	cfg := config.Default().BurpUI
	cfg.BaseURL = serverURL
	client, err := NewClient(cfg, []int{404})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	cfg := config.Default().BurpUI
	cfg.BaseURL = "http://localhost:5000/"

	client, err := NewClient(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", client.baseURL.String())
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.True(t, client.fromUI)
}

func TestNewClient_RelativeURL(t *testing.T) {
	cfg := config.Default().BurpUI
	cfg.BaseURL = "localhost:5000"

	_, err := NewClient(cfg, nil)
	assert.Error(t, err)
}

func TestClient_FetchRunning_Global(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/clients/backup-running", r.URL.Path)
		assert.Equal(t, "true", r.Header.Get("X-From-UI"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Cache-Control"))

		json.NewEncoder(w).Encode(map[string]bool{"running": true})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	state, err := client.FetchRunning(context.Background(), models.Scope{Kind: models.ScopeGlobal})
	require.NoError(t, err)
	assert.True(t, state.Running)
}

func TestClient_FetchRunning_ScopePaths(t *testing.T) {
	tests := []struct {
		name  string
		scope models.Scope
		path  string
	}{
		{"server", models.Scope{Kind: models.ScopeServer, Server: "agent1"}, "/api/clients/agent1/backup-running"},
		{"client", models.Scope{Kind: models.ScopeClient, Client: "web01"}, "/api/clients/running/web01"},
		{"client on server", models.Scope{Kind: models.ScopeClient, Server: "agent1", Client: "web01"}, "/api/clients/agent1/running/web01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Write([]byte(`[]`))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			state, err := client.FetchRunning(context.Background(), tt.scope)
			require.NoError(t, err)
			assert.False(t, state.Running)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestClient_FetchRunning_NotFoundMeansIdle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "client not running"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	state, err := client.FetchRunning(context.Background(), models.Scope{Kind: models.ScopeClient, Client: "web01"})
	require.NoError(t, err)
	assert.Equal(t, models.RunningState{}, state)
}

func TestClient_FetchRunning_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "backend unreachable"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchRunning(context.Background(), models.Scope{})
	require.Error(t, err)

	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 500, code)
	assert.Contains(t, err.Error(), "backend unreachable")
}

func TestClient_FetchRunning_UnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unrelated": 1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchRunning(context.Background(), models.Scope{})
	assert.True(t, errors.Is(err, ErrUnexpectedShape))
}

func TestClient_CacheBypassHeader(t *testing.T) {
	var cacheControl string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cacheControl = r.Header.Get("Cache-Control")
		w.Write([]byte(`{"running": false}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	running := true
	client.SetCacheBypass(func() bool { return running })

	_, err := client.FetchRunning(context.Background(), models.Scope{})
	require.NoError(t, err)
	assert.Equal(t, "no-cache", cacheControl)

	running = false
	_, err = client.FetchRunning(context.Background(), models.Scope{})
	require.NoError(t, err)
	assert.Empty(t, cacheControl)
}

func TestClient_BasicAuthAndBasePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "admin", pass)
		assert.Equal(t, "/burp/api/misc/about", r.URL.Path)
		w.Write([]byte(`{"version": "0.6.0"}`))
	}))
	defer server.Close()

	cfg := config.Default().BurpUI
	cfg.BaseURL = server.URL + "/burp"
	cfg.Username = "admin"
	cfg.Password = "admin"
	client, err := NewClient(cfg, nil)
	require.NoError(t, err)

	require.NoError(t, client.Ping(context.Background()))
}

func TestClient_RunningClients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/clients/agent1/running", r.URL.Path)
		w.Write([]byte(`["web01", "db01"]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	clients, err := client.RunningClients(context.Background(), "agent1")
	require.NoError(t, err)
	assert.Equal(t, []string{"web01", "db01"}, clients)
}

func TestClient_SubmitRestore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/async/archive/web01/7", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, `{"restore":[{"folder":true,"key":"/etc"},{"folder":false,"key":"/var/log/syslog"}]}`, r.PostForm.Get("list"))
		assert.Equal(t, "1", r.PostForm.Get("strip"))
		assert.Equal(t, "tar.gz", r.PostForm.Get("format"))
		assert.Equal(t, "s3cret", r.PostForm.Get("pass"))

		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"id": "c0ffee"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	id, err := client.SubmitRestore(context.Background(), models.RestoreRequest{
		Client:   "web01",
		Backup:   7,
		Paths:    []string{"/etc/", "/var/log/syslog"},
		Strip:    1,
		Format:   "tar.gz",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "c0ffee", id)
}

func TestClient_SubmitRestore_NoID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.SubmitRestore(context.Background(), models.RestoreRequest{Client: "c", Backup: 1, Paths: []string{"/"}})
	assert.True(t, errors.Is(err, ErrUnexpectedShape))
}

func TestClient_TaskStatusAndCancel(t *testing.T) {
	var deleted bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/async/archive-status/abc%201", r.URL.EscapedPath())
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"state": "SUCCESS", "location": "/api/async/get-file/abc"}`))
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	statusURL := client.TaskStatusURL("abc 1")

	status, err := client.TaskStatus(context.Background(), statusURL)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStateSuccess, status.State)
	assert.Equal(t, "/api/async/get-file/abc", status.Location)

	require.NoError(t, client.CancelTask(context.Background(), statusURL))
	assert.True(t, deleted)
}

func TestClient_TaskStatus_BadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>proxy error</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.TaskStatus(context.Background(), client.TaskStatusURL("x"))
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "Bad Gateway", httpErr.Message)
}

func TestClient_Download(t *testing.T) {
	payload := bytes.Repeat([]byte("archive"), 1000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/async/get-file/abc", r.URL.Path)
		w.Write(payload)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var buf bytes.Buffer
	n, err := client.Download(context.Background(), "/api/async/get-file/abc", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), n)
	assert.Equal(t, payload, buf.Bytes())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", errorMessage(500, []byte(`{"message":"boom"}`)))
	assert.Equal(t, "task failed", errorMessage(500, []byte(`{"error":"task failed"}`)))
	assert.Equal(t, "Sorry, nope", errorMessage(403, []byte(`[2, "Sorry, nope"]`)))
	assert.Equal(t, "Service Unavailable", errorMessage(503, nil))
	assert.Equal(t, "plain text", errorMessage(500, []byte("plain text\n")))
}
