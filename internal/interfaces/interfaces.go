package interfaces

import (
	"context"
	"io"
	"time"

	"burpwatch/internal/models"
)

// Notifier shows a short-lived message to the operator. Implementations
// must not block the caller.
type Notifier interface {
	Notify(level models.Level, message string, timeout time.Duration)
}

// StatusFetcher asks burp-ui whether something is running for a scope.
type StatusFetcher interface {
	FetchRunning(ctx context.Context, scope models.Scope) (models.RunningState, error)
}

// TaskClient reads and cancels asynchronous burp-ui tasks.
type TaskClient interface {
	TaskStatus(ctx context.Context, statusURL string) (*models.TaskStatus, error)
	CancelTask(ctx context.Context, statusURL string) error
}

// RunningClientsFetcher lists the clients currently running a backup.
type RunningClientsFetcher interface {
	RunningClients(ctx context.Context, server string) ([]string, error)
}

// BurpUIClient is the full surface of the burp-ui REST client.
type BurpUIClient interface {
	StatusFetcher
	TaskClient
	RunningClientsFetcher
	SubmitRestore(ctx context.Context, req models.RestoreRequest) (string, error)
	TaskStatusURL(taskID string) string
	Download(ctx context.Context, location string, w io.Writer) (int64, error)
	Ping(ctx context.Context) error
}

// RunningChecker reports the last observed running flag.
type RunningChecker interface {
	IsRunning() bool
}

// StatusPoller is what the HTTP layer needs from the poller.
type StatusPoller interface {
	Snapshot() models.StatusSnapshot
	ForcePoll(ctx context.Context, force bool) (models.RunningState, error)
}

// RestoreRepository provides database access for restore records
type RestoreRepository interface {
	CreateRestore(restore *models.Restore) error
	GetRestore(id string) (*models.Restore, error)
	GetRestores(filter models.RestoreFilter) ([]*models.Restore, error)
	UpdateRestore(restore *models.Restore) error
	GetRestoreSummary() (*models.RestoreSummary, error)
	GetActiveRestoresCount() (int, error)
}

// StatusEventRepository stores observed running-state transitions
type StatusEventRepository interface {
	CreateStatusEvent(event *models.StatusEvent) error
	GetStatusEvents(filter models.StatusEventFilter) ([]*models.StatusEvent, error)
	PruneStatusEvents(keep int) (int64, error)
}

// Gatekeeper decides whether a restore may start
type Gatekeeper interface {
	CanStartRestore(estimatedSize int64) GateDecision
	GetResourceStatus() GatekeeperResourceStatus
}

// GateDecision represents whether an operation can proceed
type GateDecision struct {
	Allowed bool                   `json:"allowed"`
	Reason  string                 `json:"reason"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// GatekeeperResourceStatus is the snapshot the API reports
type GatekeeperResourceStatus struct {
	BackupRunning     bool  `json:"backup_running"`
	ActiveRestores    int   `json:"active_restores"`
	MaxActiveRestores int   `json:"max_active_restores"`
	DownloadFreeBytes int64 `json:"download_free_bytes"`
	DownloadTotal     int64 `json:"download_total_bytes"`
	MinFreeBytes      int64 `json:"min_free_bytes"`
}

// RestoreService manages restore operations
type RestoreService interface {
	StartRestore(ctx context.Context, req models.RestoreRequest) (*models.Restore, error)
	GetRestore(id string) (*models.Restore, error)
	GetRestores(filter models.RestoreFilter) ([]*models.Restore, error)
	CancelRestore(ctx context.Context, id string) error
	GetRestoreSummary() (*models.RestoreSummary, error)
}
