package burpui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"burpwatch/internal/config"
	"burpwatch/internal/models"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// Client represents an HTTP client for the burp-ui REST API
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	downloadClient *http.Client
	username       string
	password       string
	fromUI         bool
	endpoints      config.EndpointsConfig
	notRunning     map[int]bool
	bypassCache    atomic.Pointer[func() bool]
}

// HTTPError is returned for every non-2xx answer.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// StatusCode extracts the HTTP status of err, if it carries one.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}

// NewClient creates a new burp-ui HTTP client. Responses whose status is in
// notRunningStatuses are read as "nothing is running" by FetchRunning.
func NewClient(cfg config.BurpUIConfig, notRunningStatuses []int) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	endpoints := cfg.Endpoints
	notRunning := make(map[int]bool, len(notRunningStatuses))
	for _, code := range notRunningStatuses {
		notRunning[code] = true
	}

	return &Client{
		baseURL:        base,
		httpClient:     &http.Client{Timeout: timeout},
		downloadClient: &http.Client{},
		username:       cfg.Username,
		password:       cfg.Password,
		fromUI:         cfg.UIHeader(),
		endpoints:      endpoints,
		notRunning:     notRunning,
	}, nil
}

// SetCacheBypass installs a hook consulted on every request; when it returns
// true the request asks intermediaries not to serve a cached answer.
func (c *Client) SetCacheBypass(fn func() bool) {
	c.bypassCache.Store(&fn)
}

// FetchRunning asks whether a backup is running for the given scope.
func (c *Client) FetchRunning(ctx context.Context, scope models.Scope) (models.RunningState, error) {
	endpoint := c.runningPath(scope)

	var raw json.RawMessage
	err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, "", &raw)
	if err != nil {
		if code, ok := StatusCode(err); ok && c.notRunning[code] {
			slog.Debug("status endpoint reported not running", "scope", scope.String(), "status", code)
			return models.RunningState{}, nil
		}
		return models.RunningState{}, fmt.Errorf("failed to fetch running state: %w", err)
	}

	return ParseRunningState(raw)
}

// RunningClients lists the clients currently running a backup.
func (c *Client) RunningClients(ctx context.Context, server string) ([]string, error) {
	endpoint := c.endpoints.RunningClients
	if server != "" {
		endpoint = expand(c.endpoints.ServerRunningClients, map[string]string{"server": server})
	}

	var raw json.RawMessage
	if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, "", &raw); err != nil {
		if code, ok := StatusCode(err); ok && c.notRunning[code] {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list running clients: %w", err)
	}

	state, err := ParseRunningState(raw)
	if err != nil {
		return nil, err
	}
	if state.Clients == nil {
		return []string{}, nil
	}
	return state.Clients, nil
}

type restoreSelection struct {
	Restore []restoreItem `json:"restore"`
}

type restoreItem struct {
	Folder bool   `json:"folder"`
	Key    string `json:"key"`
}

type submitResponse struct {
	ID     string `json:"id"`
	TaskID string `json:"task_id"`
}

// SubmitRestore starts an asynchronous archive restore and returns the task id.
func (c *Client) SubmitRestore(ctx context.Context, req models.RestoreRequest) (string, error) {
	vars := map[string]string{
		"client": req.Client,
		"backup": strconv.Itoa(req.Backup),
		"server": req.Server,
	}
	endpoint := expand(c.endpoints.AsyncArchive, vars)
	if req.Server != "" {
		endpoint = expand(c.endpoints.ServerAsyncArchive, vars)
	}

	selection := restoreSelection{}
	for _, p := range req.Paths {
		selection.Restore = append(selection.Restore, restoreItem{
			Folder: strings.HasSuffix(p, "/"),
			Key:    strings.TrimSuffix(p, "/"),
		})
	}
	list, err := json.Marshal(selection)
	if err != nil {
		return "", fmt.Errorf("failed to marshal restore list: %w", err)
	}

	format := req.Format
	if format == "" {
		format = "zip"
	}
	form := url.Values{}
	form.Set("list", string(list))
	form.Set("strip", strconv.Itoa(req.Strip))
	form.Set("format", format)
	if req.Password != "" {
		form.Set("pass", req.Password)
	}

	var resp submitResponse
	err = c.makeRequest(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded", &resp)
	if err != nil {
		return "", fmt.Errorf("failed to submit restore: %w", err)
	}

	id := resp.ID
	if id == "" {
		id = resp.TaskID
	}
	if id == "" {
		return "", fmt.Errorf("%w: submit response has no task id", ErrUnexpectedShape)
	}
	return id, nil
}

// TaskStatusURL builds the absolute status URL of a task.
func (c *Client) TaskStatusURL(taskID string) string {
	return c.resolve(expand(c.endpoints.TaskStatus, map[string]string{"id": taskID}))
}

// TaskStatus reads the state of an asynchronous task.
func (c *Client) TaskStatus(ctx context.Context, statusURL string) (*models.TaskStatus, error) {
	var raw json.RawMessage
	if err := c.makeRequest(ctx, http.MethodGet, statusURL, nil, "", &raw); err != nil {
		return nil, err
	}
	return ParseTaskStatus(raw)
}

// CancelTask asks burp-ui to revoke a task.
func (c *Client) CancelTask(ctx context.Context, statusURL string) error {
	return c.makeRequest(ctx, http.MethodDelete, statusURL, nil, "", nil)
}

// Download streams the archive at location into w.
func (c *Client) Download(ctx context.Context, location string, w io.Writer) (int64, error) {
	req, err := c.newRequest(ctx, http.MethodGet, location, nil, "")
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		return 0, newHTTPError(resp.StatusCode, body)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to write archive: %w", err)
	}
	return n, nil
}

// Ping checks if burp-ui is reachable and accepts our credentials
func (c *Client) Ping(ctx context.Context) error {
	return c.makeRequest(ctx, http.MethodGet, c.endpoints.Ping, nil, "", nil)
}

func (c *Client) runningPath(scope models.Scope) string {
	vars := map[string]string{"server": scope.Server, "client": scope.Client}
	switch scope.Kind {
	case models.ScopeClient:
		if scope.Server != "" {
			return expand(c.endpoints.ServerClientRunning, vars)
		}
		return expand(c.endpoints.ClientRunning, vars)
	case models.ScopeServer:
		return expand(c.endpoints.ServerBackupRunning, vars)
	default:
		if scope.Server != "" {
			return expand(c.endpoints.ServerBackupRunning, vars)
		}
		return c.endpoints.BackupRunning
	}
}

func expand(template string, vars map[string]string) string {
	out := template
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{"+k+"}", url.PathEscape(v))
	}
	return out
}

// resolve turns an endpoint path into an absolute URL. Paths keep any prefix
// the base URL carries, so burp-ui can live under a sub-path.
func (c *Client) resolve(target string) string {
	if u, err := url.Parse(target); err == nil && u.IsAbs() {
		return target
	}
	return strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(target, "/")
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(target), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "burpwatch/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.fromUI {
		req.Header.Set("X-From-UI", "true")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	if fn := c.bypassCache.Load(); fn != nil && (*fn)() {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}

	return req, nil
}

// makeRequest makes an HTTP request to burp-ui and decodes a JSON answer
func (c *Client) makeRequest(ctx context.Context, method, endpoint string, body io.Reader, contentType string, response interface{}) error {
	req, err := c.newRequest(ctx, method, endpoint, body, contentType)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newHTTPError(resp.StatusCode, respBody)
	}

	if response != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, response); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrUnexpectedShape, err)
		}
	}

	return nil
}

func newHTTPError(status int, body []byte) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Message:    errorMessage(status, body),
		Body:       string(body),
	}
}

// errorMessage pulls a human readable message out of an error payload.
// burp-ui answers with {"message": ...}, {"error": ...} or [level, message].
func errorMessage(status int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return http.StatusText(status)
	}

	var obj struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		if obj.Message != "" {
			return obj.Message
		}
		if obj.Error != "" {
			return obj.Error
		}
	}

	var pair []interface{}
	if err := json.Unmarshal([]byte(trimmed), &pair); err == nil && len(pair) == 2 {
		if msg, ok := pair[1].(string); ok {
			return msg
		}
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "<") {
		return http.StatusText(status)
	}
	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}
