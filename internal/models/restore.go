package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is wrapped by lookups that match no record.
var ErrNotFound = errors.New("not found")

type RestoreStatus string

const (
	RestoreStatusQueued    RestoreStatus = "queued"
	RestoreStatusRunning   RestoreStatus = "running"
	RestoreStatusCompleted RestoreStatus = "completed"
	RestoreStatusFailed    RestoreStatus = "failed"
	RestoreStatusCancelled RestoreStatus = "cancelled"
)

// RestoreRequest mirrors the form accepted by the async archive endpoint.
type RestoreRequest struct {
	Client   string   `json:"client"`
	Backup   int      `json:"backup"`
	Server   string   `json:"server,omitempty"`
	Paths    []string `json:"paths"`
	Strip    int      `json:"strip,omitempty"`
	Format   string   `json:"format,omitempty"`
	Password string   `json:"-"`
	// EstimatedSize lets the gatekeeper check free space up front.
	EstimatedSize int64 `json:"estimated_size,omitempty"`
}

func (r RestoreRequest) Validate() error {
	if r.Client == "" {
		return fmt.Errorf("client is required")
	}
	if r.Backup <= 0 {
		return fmt.Errorf("backup number must be positive")
	}
	if len(r.Paths) == 0 {
		return fmt.Errorf("at least one path is required")
	}
	if r.Strip < 0 {
		return fmt.Errorf("strip cannot be negative")
	}
	switch r.Format {
	case "", "zip", "tar.gz", "tar.bz2":
	default:
		return fmt.Errorf("unsupported archive format %q", r.Format)
	}
	return nil
}

type Restore struct {
	ID           string         `json:"id" db:"id"`
	TaskID       string         `json:"task_id,omitempty" db:"task_id"`
	Client       string         `json:"client" db:"client"`
	Backup       int            `json:"backup" db:"backup"`
	Server       string         `json:"server,omitempty" db:"server"`
	StatusURL    string         `json:"status_url,omitempty" db:"status_url"`
	Status       RestoreStatus  `json:"status" db:"status"`
	TaskState    TaskState      `json:"task_state,omitempty" db:"task_state"`
	Location     string         `json:"location,omitempty" db:"location"`
	LocalPath    string         `json:"local_path,omitempty" db:"local_path"`
	Bytes        int64          `json:"bytes" db:"bytes"`
	ErrorMessage string         `json:"error_message,omitempty" db:"error_message"`
	Request      RestoreRequest `json:"request" db:"request"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
	StartedAt    *time.Time     `json:"started_at,omitempty" db:"started_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
}

type RestoreFilter struct {
	Status []RestoreStatus `json:"status,omitempty"`
	Client string          `json:"client,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

type RestoreSummary struct {
	TotalRestores     int   `json:"total_restores"`
	QueuedRestores    int   `json:"queued_restores"`
	RunningRestores   int   `json:"running_restores"`
	CompletedRestores int   `json:"completed_restores"`
	FailedRestores    int   `json:"failed_restores"`
	CancelledRestores int   `json:"cancelled_restores"`
	BytesDownloaded   int64 `json:"bytes_downloaded"`
}

func (r RestoreRequest) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RestoreRequest) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into RestoreRequest", value)
	}

	return json.Unmarshal(bytes, r)
}

func NewRestore(id string, req RestoreRequest) *Restore {
	now := time.Now()
	return &Restore{
		ID:        id,
		Client:    req.Client,
		Backup:    req.Backup,
		Server:    req.Server,
		Status:    RestoreStatusQueued,
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *Restore) IsActive() bool {
	return r.Status == RestoreStatusRunning
}

func (r *Restore) IsCompleted() bool {
	return r.Status == RestoreStatusCompleted || r.Status == RestoreStatusFailed || r.Status == RestoreStatusCancelled
}

func (r *Restore) MarkStarted(taskID, statusURL string) {
	now := time.Now()
	r.Status = RestoreStatusRunning
	r.TaskID = taskID
	r.StatusURL = statusURL
	r.TaskState = TaskStatePending
	r.StartedAt = &now
	r.UpdatedAt = now
}

func (r *Restore) MarkCompleted(location, localPath string, bytes int64) {
	now := time.Now()
	r.Status = RestoreStatusCompleted
	r.TaskState = TaskStateSuccess
	r.Location = location
	r.LocalPath = localPath
	r.Bytes = bytes
	r.CompletedAt = &now
	r.UpdatedAt = now
}

func (r *Restore) MarkFailed(errorMsg string) {
	now := time.Now()
	r.Status = RestoreStatusFailed
	r.ErrorMessage = errorMsg
	r.CompletedAt = &now
	r.UpdatedAt = now
}

func (r *Restore) MarkCancelled() {
	now := time.Now()
	r.Status = RestoreStatusCancelled
	r.TaskState = TaskStateRevoked
	r.CompletedAt = &now
	r.UpdatedAt = now
}
