package notifications

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"burpwatch/internal/config"
	"burpwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func createTestConfig(enabled bool) *config.Config {
	return &config.Config{
		Notifications: config.NotificationsConfig{
			Pushover: config.PushoverConfig{
				Enabled:       enabled,
				Token:         "test-token",
				User:          "test-user",
				MinLevel:      "warning",
				ErrorPriority: 1,
				RetryInterval: 30 * time.Second,
				ExpireTime:    300 * time.Second,
			},
		},
	}
}

func createMockPushoverServer(t *testing.T, statusCode int, response pushoverResponse, captured *pushoverRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify HTTP method
		assert.Equal(t, "POST", r.Method)

		// Verify headers
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "burpwatch/1.0", r.Header.Get("User-Agent"))

		// Parse request body
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req pushoverRequest
		err = json.Unmarshal(body, &req)
		require.NoError(t, err)

		// Verify credentials
		assert.Equal(t, "test-token", req.Token)
		assert.Equal(t, "test-user", req.User)
		if captured != nil {
			*captured = req
		}

		// Send response
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(response)
	}))
}

func notification(level models.Level, message string) models.Notification {
	return models.Notification{
		ID:        1,
		Level:     level,
		Message:   message,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Constructor & Configuration Tests

func TestNewPushoverNotifier(t *testing.T) {
	cfg := createTestConfig(true)

	notifier := NewPushoverNotifier(cfg)

	assert.NotNil(t, notifier)
	assert.Equal(t, cfg, notifier.config)
	assert.NotNil(t, notifier.httpClient)
	assert.Equal(t, pushoverAPIURL, notifier.apiURL)
	assert.Equal(t, 30*time.Second, notifier.httpClient.Timeout)
	assert.Equal(t, "pushover", notifier.Name())
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		expected bool
	}{
		{
			name:     "enabled",
			enabled:  true,
			expected: true,
		},
		{
			name:     "disabled",
			enabled:  false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig(tt.enabled)
			notifier := NewPushoverNotifier(cfg)

			assert.Equal(t, tt.expected, notifier.IsEnabled())
		})
	}
}

// Send Tests

func TestSend_Disabled(t *testing.T) {
	cfg := createTestConfig(false)
	notifier := NewPushoverNotifier(cfg)
	notifier.apiURL = "http://127.0.0.1:1" // would fail if used

	err := notifier.Send(context.Background(), notification(models.LevelError, "boom"))

	assert.NoError(t, err)
}

func TestSend_BelowMinLevelSkipped(t *testing.T) {
	cfg := createTestConfig(true)
	notifier := NewPushoverNotifier(cfg)
	notifier.apiURL = "http://127.0.0.1:1"

	assert.NoError(t, notifier.Send(context.Background(), notification(models.LevelInfo, "fyi")))
	assert.NoError(t, notifier.Send(context.Background(), notification(models.LevelSuccess, "done")))
}

func TestSend_Levels(t *testing.T) {
	tests := []struct {
		name          string
		level         models.Level
		errorPriority int
		minLevel      string
		expectedPrio  int
		expectedSound string
		expectedTitle string
		hasRetry      bool
	}{
		{
			name:          "error high priority",
			level:         models.LevelError,
			errorPriority: 1,
			minLevel:      "warning",
			expectedPrio:  1,
			expectedSound: "siren",
			expectedTitle: "burpwatch Error",
		},
		{
			name:          "error normal priority",
			level:         models.LevelError,
			errorPriority: -1,
			minLevel:      "warning",
			expectedPrio:  -1,
			expectedSound: "falling",
			expectedTitle: "burpwatch Error",
		},
		{
			name:          "error emergency",
			level:         models.LevelError,
			errorPriority: 2,
			minLevel:      "warning",
			expectedPrio:  2,
			expectedSound: "siren",
			expectedTitle: "burpwatch Error",
			hasRetry:      true,
		},
		{
			name:          "warning",
			level:         models.LevelWarning,
			errorPriority: 1,
			minLevel:      "warning",
			expectedPrio:  0,
			expectedSound: "pushover",
			expectedTitle: "burpwatch Warning",
		},
		{
			name:          "success when min level allows",
			level:         models.LevelSuccess,
			errorPriority: 1,
			minLevel:      "success",
			expectedPrio:  -1,
			expectedSound: "none",
			expectedTitle: "burpwatch Success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig(true)
			cfg.Notifications.Pushover.ErrorPriority = tt.errorPriority
			cfg.Notifications.Pushover.MinLevel = tt.minLevel

			var capturedReq pushoverRequest
			mockServer := createMockPushoverServer(t, http.StatusOK, pushoverResponse{Status: 1}, &capturedReq)
			defer mockServer.Close()

			notifier := NewPushoverNotifier(cfg)
			notifier.apiURL = mockServer.URL

			err := notifier.Send(context.Background(), notification(tt.level, "Test message"))

			assert.NoError(t, err)
			assert.Equal(t, "Test message", capturedReq.Message)
			assert.Equal(t, tt.expectedTitle, capturedReq.Title)
			assert.Equal(t, tt.expectedSound, capturedReq.Sound)
			assert.Equal(t, tt.expectedPrio, capturedReq.Priority)
			assert.Equal(t, int64(1704110400), capturedReq.Timestamp)

			if tt.hasRetry {
				assert.Equal(t, 30, capturedReq.Retry)
				assert.Equal(t, 300, capturedReq.Expire)
			} else {
				assert.Equal(t, 0, capturedReq.Retry)
				assert.Equal(t, 0, capturedReq.Expire)
			}
		})
	}
}

// sendNotification Tests

func TestSendNotification_APIError(t *testing.T) {
	cfg := createTestConfig(true)

	mockServer := createMockPushoverServer(t, http.StatusBadRequest, pushoverResponse{
		Status: 0,
		Errors: []string{"user identifier is invalid", "token is invalid"},
	}, nil)
	defer mockServer.Close()

	notifier := NewPushoverNotifier(cfg)
	notifier.apiURL = mockServer.URL

	err := notifier.Send(context.Background(), notification(models.LevelError, "boom"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pushover API error")
	assert.Contains(t, err.Error(), "user identifier is invalid, token is invalid")
}

func TestSendNotification_InvalidJSONResponse(t *testing.T) {
	cfg := createTestConfig(true)

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer mockServer.Close()

	notifier := NewPushoverNotifier(cfg)
	notifier.apiURL = mockServer.URL

	err := notifier.Send(context.Background(), notification(models.LevelError, "boom"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode pushover response")
}

func TestSendNotification_ContextCancelled(t *testing.T) {
	cfg := createTestConfig(true)

	mockServer := createMockPushoverServer(t, http.StatusOK, pushoverResponse{Status: 1}, nil)
	defer mockServer.Close()

	notifier := NewPushoverNotifier(cfg)
	notifier.apiURL = mockServer.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Send(ctx, notification(models.LevelError, "boom"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send pushover notification")
}

// Message builder Tests

func TestRestoreFailedMessage(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	restore := &models.Restore{
		ID:           "r-1",
		Client:       "web01",
		Backup:       12,
		Server:       "agent1",
		TaskState:    models.TaskStateFailure,
		ErrorMessage: "No space left on device",
		StartedAt:    &started,
	}

	msg := RestoreFailedMessage(restore)

	assert.Contains(t, msg, "Restore of web01 backup #12 failed")
	assert.Contains(t, msg, "Server: agent1")
	assert.Contains(t, msg, "Task state: FAILURE")
	assert.Contains(t, msg, "Error: No space left on device")
	assert.Contains(t, msg, "Duration:")
	assert.Contains(t, msg, "Restore ID: r-1")
}

func TestRestoreCompletedMessage(t *testing.T) {
	started := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	completed := started.Add(2 * time.Minute)
	restore := &models.Restore{
		ID:          "r-2",
		Client:      "db01",
		Backup:      3,
		LocalPath:   "/restores/restoration_3_db01.zip",
		Bytes:       5 * 1024 * 1024,
		StartedAt:   &started,
		CompletedAt: &completed,
	}

	msg := RestoreCompletedMessage(restore)

	assert.Contains(t, msg, "Restore of db01 backup #3 is ready")
	assert.Contains(t, msg, "File: /restores/restoration_3_db01.zip")
	assert.Contains(t, msg, "Size: 5.0 MB")
	assert.Contains(t, msg, "Duration: 2m0s")
	assert.Contains(t, msg, "Restore ID: r-2")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{1024 * 1024 * 1024, "1.0 GB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBytes(tt.bytes))
		})
	}
}
