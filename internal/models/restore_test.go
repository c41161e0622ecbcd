package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreRequest_Validate(t *testing.T) {
	valid := RestoreRequest{Client: "web01", Backup: 3, Paths: []string{"/etc/"}}

	tests := []struct {
		name    string
		mutate  func(r *RestoreRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(r *RestoreRequest) {}},
		{name: "tar.gz", mutate: func(r *RestoreRequest) { r.Format = "tar.gz" }},
		{name: "missing client", mutate: func(r *RestoreRequest) { r.Client = "" }, wantErr: "client"},
		{name: "zero backup", mutate: func(r *RestoreRequest) { r.Backup = 0 }, wantErr: "backup number"},
		{name: "no paths", mutate: func(r *RestoreRequest) { r.Paths = nil }, wantErr: "path"},
		{name: "negative strip", mutate: func(r *RestoreRequest) { r.Strip = -1 }, wantErr: "strip"},
		{name: "bad format", mutate: func(r *RestoreRequest) { r.Format = "rar" }, wantErr: "unsupported archive format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRestoreRequest_ValueOmitsPassword(t *testing.T) {
	req := RestoreRequest{Client: "web01", Backup: 3, Paths: []string{"/etc/"}, Password: "s3cret"}

	value, err := req.Value()
	require.NoError(t, err)
	assert.NotContains(t, string(value.([]byte)), "s3cret")

	var decoded RestoreRequest
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, "web01", decoded.Client)
	assert.Empty(t, decoded.Password)

	assert.Error(t, decoded.Scan(42))
}

func TestRestore_Lifecycle(t *testing.T) {
	r := NewRestore("abc", RestoreRequest{Client: "web01", Backup: 7, Server: "agent1"})
	assert.Equal(t, RestoreStatusQueued, r.Status)
	assert.False(t, r.IsActive())
	assert.False(t, r.IsCompleted())

	r.MarkStarted("task-1", "http://burpui/api/async/archive-status/task-1")
	assert.True(t, r.IsActive())
	assert.Equal(t, TaskStatePending, r.TaskState)
	require.NotNil(t, r.StartedAt)

	r.MarkCompleted("/api/async/get-file/task-1", "/downloads/a.zip", 2048)
	assert.False(t, r.IsActive())
	assert.True(t, r.IsCompleted())
	assert.Equal(t, TaskStateSuccess, r.TaskState)
	assert.Equal(t, int64(2048), r.Bytes)
	require.NotNil(t, r.CompletedAt)
}

func TestRestore_MarkFailedAndCancelled(t *testing.T) {
	r := NewRestore("abc", RestoreRequest{Client: "web01", Backup: 7})
	r.MarkStarted("task-1", "")
	r.MarkFailed("disk full")
	assert.Equal(t, RestoreStatusFailed, r.Status)
	assert.Equal(t, "disk full", r.ErrorMessage)
	assert.True(t, r.IsCompleted())

	r = NewRestore("def", RestoreRequest{Client: "web01", Backup: 7})
	r.MarkStarted("task-2", "")
	r.MarkCancelled()
	assert.Equal(t, RestoreStatusCancelled, r.Status)
	assert.Equal(t, TaskStateRevoked, r.TaskState)
}
