package burpui

import (
	"errors"
	"testing"

	"burpwatch/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunningState(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected models.RunningState
	}{
		{"bool true", `{"running": true}`, models.RunningState{Running: true}},
		{"bool false", `{"running": false}`, models.RunningState{}},
		{"client list", `{"running": ["a", "b"]}`, models.RunningState{Running: true, Clients: []string{"a", "b"}}},
		{"empty client list", `{"running": []}`, models.RunningState{Clients: []string{}}},
		{"multi agent", `{"running": {"s2": ["z"], "s1": ["a"]}}`, models.RunningState{Running: true, Clients: []string{"a", "z"}}},
		{"results wrapper", `{"results": {"running": true}}`, models.RunningState{Running: true}},
		{"bare array", `["web01"]`, models.RunningState{Running: true, Clients: []string{"web01"}}},
		{"bare bool", `true`, models.RunningState{Running: true}},
		{"client detail", `{"state": "running", "phase": "backup", "percent": 42.4}`,
			models.RunningState{Running: true, Phase: "backup", Percent: 42}},
		{"percent string", `{"running": true, "percent": "73%"}`, models.RunningState{Running: true, Percent: 73}},
		{"percent ignored when idle", `{"state": "idle", "percent": 99}`, models.RunningState{}},
		{"percent clamped", `{"running": true, "percent": 250}`, models.RunningState{Running: true, Percent: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := ParseRunningState([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, state)
		})
	}
}

func TestParseRunningState_Rejects(t *testing.T) {
	bodies := []string{
		``,
		`null`,
		`"running"`,
		`{}`,
		`{"running": "yes"}`,
		`{"running": true, "percent": {}}`,
		`[1, 2]`,
	}

	for _, body := range bodies {
		_, err := ParseRunningState([]byte(body))
		assert.True(t, errors.Is(err, ErrUnexpectedShape), "body %q", body)
	}
}

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected models.TaskStatus
	}{
		{"pending", `{"state": "PENDING"}`, models.TaskStatus{State: models.TaskStatePending}},
		{"lowercase", `{"state": "success", "location": "/get/1"}`,
			models.TaskStatus{State: models.TaskStateSuccess, Location: "/get/1"}},
		{"status alias", `{"status": "STARTED"}`, models.TaskStatus{State: models.TaskStateStarted}},
		{"celery meta", `{"state": "SUCCESS", "meta": {"filename": "r.zip", "path": "/tmp/r.zip"}}`,
			models.TaskStatus{State: models.TaskStateSuccess, Location: "/tmp/r.zip"}},
		{"celery error", `{"state": "FAILURE", "result": {"error": "encrypted backup"}}`,
			models.TaskStatus{State: models.TaskStateFailure, Message: "encrypted backup"}},
		{"celery exception text", `{"state": "FAILURE", "result": "Traceback"}`,
			models.TaskStatus{State: models.TaskStateFailure, Message: "Traceback"}},
		{"top level wins", `{"state": "FAILURE", "message": "top", "meta": {"error": "nested"}}`,
			models.TaskStatus{State: models.TaskStateFailure, Message: "top"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseTaskStatus([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *status)
		})
	}
}

func TestParseTaskStatus_Rejects(t *testing.T) {
	for _, body := range []string{``, `[]`, `{}`, `{"location": "/x"}`} {
		_, err := ParseTaskStatus([]byte(body))
		assert.True(t, errors.Is(err, ErrUnexpectedShape), "body %q", body)
	}
}
