package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"burpwatch/internal/clock"
	"burpwatch/internal/config"
	"burpwatch/internal/interfaces"
	"burpwatch/internal/models"
	"burpwatch/internal/notifications"
	"burpwatch/internal/sanitizer"
	"burpwatch/internal/tasks"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest = errors.New("invalid restore request")
	ErrRestoreBlocked = errors.New("restore blocked")
	ErrNotActive      = errors.New("restore is not active")
)

// Recorder receives restore metrics.
type Recorder interface {
	RecordRestoreDuration(status string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordRestoreDuration(string, time.Duration) {}

type activeRestore struct {
	handle *tasks.Handle
	// finished is closed once the outcome has been persisted.
	finished chan struct{}
	once     sync.Once
}

func (a *activeRestore) finish() {
	a.once.Do(func() { close(a.finished) })
}

type RestoreService struct {
	config     *config.Config
	repository interfaces.RestoreRepository
	client     interfaces.BurpUIClient
	gatekeeper interfaces.Gatekeeper
	notifier   interfaces.Notifier
	watcher    *tasks.Watcher
	metrics    Recorder
	clock      clock.Clock

	mu      sync.Mutex
	active  map[string]*activeRestore
	closing bool
	// inflight counts outcome callbacks that are persisting a result.
	inflight sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRestoreService(cfg *config.Config, repo interfaces.RestoreRepository, client interfaces.BurpUIClient,
	gatekeeper interfaces.Gatekeeper, notifier interfaces.Notifier, watcher *tasks.Watcher, metrics Recorder) *RestoreService {
	if metrics == nil {
		metrics = nopRecorder{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &RestoreService{
		config:     cfg,
		repository: repo,
		client:     client,
		gatekeeper: gatekeeper,
		notifier:   notifier,
		watcher:    watcher,
		metrics:    metrics,
		clock:      clock.Real(),
		active:     make(map[string]*activeRestore),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetClock replaces the clock used to stamp archive filenames.
func (s *RestoreService) SetClock(c clock.Clock) {
	s.clock = c
}

func (s *RestoreService) StartRestore(ctx context.Context, req models.RestoreRequest) (*models.Restore, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	decision := s.gatekeeper.CanStartRestore(req.EstimatedSize)
	if !decision.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrRestoreBlocked, decision.Reason)
	}

	taskID, err := s.client.SubmitRestore(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit restore: %w", err)
	}

	restore := models.NewRestore(uuid.NewString(), req)
	restore.MarkStarted(taskID, s.client.TaskStatusURL(taskID))

	if err := s.repository.CreateRestore(restore); err != nil {
		// Nobody would ever collect the archive, so drop the task.
		cancelCtx, cancel := context.WithTimeout(context.Background(), s.config.GetTasks().CancelTimeout)
		defer cancel()
		if cancelErr := s.client.CancelTask(cancelCtx, restore.StatusURL); cancelErr != nil {
			slog.Warn("failed to cancel orphaned restore task", "task_id", taskID, "error", cancelErr)
		}
		return nil, fmt.Errorf("failed to create restore: %w", err)
	}

	slog.Info("restore submitted",
		"restore_id", restore.ID,
		"task_id", taskID,
		"client", restore.Client,
		"backup", restore.Backup,
		"server", restore.Server)

	if err := s.watch(restore); err != nil {
		s.fail(restore, fmt.Sprintf("Failed to watch task: %v", err))
		return nil, fmt.Errorf("failed to watch restore task: %w", err)
	}

	return restore, nil
}

func (s *RestoreService) GetRestore(id string) (*models.Restore, error) {
	return s.repository.GetRestore(id)
}

func (s *RestoreService) GetRestores(filter models.RestoreFilter) ([]*models.Restore, error) {
	return s.repository.GetRestores(filter)
}

func (s *RestoreService) GetRestoreSummary() (*models.RestoreSummary, error) {
	return s.repository.GetRestoreSummary()
}

// CancelRestore stops watching the task and asks burp-ui to revoke it.
func (s *RestoreService) CancelRestore(ctx context.Context, id string) error {
	restore, err := s.repository.GetRestore(id)
	if err != nil {
		return err
	}

	if !restore.IsActive() {
		return fmt.Errorf("%w: restore %s is %s", ErrNotActive, id, restore.Status)
	}

	if entry := s.take(id); entry != nil {
		entry.handle.Cancel()
		defer entry.finish()
	} else if restore.StatusURL != "" {
		cancelCtx, cancel := context.WithTimeout(ctx, s.config.GetTasks().CancelTimeout)
		defer cancel()
		if err := s.client.CancelTask(cancelCtx, restore.StatusURL); err != nil {
			slog.Warn("failed to cancel restore task", "restore_id", id, "task_id", restore.TaskID, "error", err)
		}
	}

	restore.MarkCancelled()
	s.recordDuration(restore)

	slog.Info("restore cancelled", "restore_id", id, "task_id", restore.TaskID)
	return s.repository.UpdateRestore(restore)
}

// Wait blocks until the restore reaches a final state or ctx ends.
func (s *RestoreService) Wait(ctx context.Context, id string) (*models.Restore, error) {
	s.mu.Lock()
	entry := s.active[id]
	s.mu.Unlock()

	if entry != nil {
		select {
		case <-entry.finished:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return s.repository.GetRestore(id)
}

// RecoverInterruptedRestores resumes watching restores a previous run left
// running.
func (s *RestoreService) RecoverInterruptedRestores() error {
	restores, err := s.repository.GetRestores(models.RestoreFilter{
		Status: []models.RestoreStatus{models.RestoreStatusRunning},
	})
	if err != nil {
		return fmt.Errorf("failed to get running restores: %w", err)
	}

	if len(restores) == 0 {
		return nil
	}

	slog.Info("recovering interrupted restores", "count", len(restores))

	for _, restore := range restores {
		if restore.TaskID == "" {
			s.fail(restore, "Interrupted before burp-ui accepted the task")
			continue
		}

		if err := s.watch(restore); err != nil {
			slog.Error("failed to recover restore", "restore_id", restore.ID, "error", err)
			s.fail(restore, fmt.Sprintf("Failed to resume watching task: %v", err))
			continue
		}

		slog.Info("recovered interrupted restore", "restore_id", restore.ID, "task_id", restore.TaskID)
	}

	return nil
}

// Shutdown stops watching without revoking anything, so the next run can
// pick the restores up again.
func (s *RestoreService) Shutdown() error {
	slog.Info("shutting down restore service")

	s.mu.Lock()
	s.closing = true
	entries := make([]*activeRestore, 0, len(s.active))
	for id, entry := range s.active {
		entries = append(entries, entry)
		delete(s.active, id)
	}
	s.mu.Unlock()

	for _, entry := range entries {
		entry.handle.Stop()
		entry.finish()
	}

	// Abort downloads in progress; their records stay running.
	s.cancel()
	s.inflight.Wait()
	s.watcher.Wait()

	slog.Info("restore service stopped", "left_running", len(entries))
	return nil
}

func (s *RestoreService) watch(restore *models.Restore) error {
	tasksCfg := s.config.GetTasks()
	template := s.config.GetBurpUI().Endpoints.TaskStatus

	entry := &activeRestore{finished: make(chan struct{})}
	id := restore.ID

	s.mu.Lock()
	defer s.mu.Unlock()

	handle, err := s.watcher.Watch(restore.TaskID, template, tasksCfg.PollInterval, tasks.Callbacks{
		OnSuccess: func(location string) {
			defer entry.finish()
			if !s.beginOutcome() {
				return
			}
			defer s.inflight.Done()
			s.forget(id, entry)
			s.complete(id, location)
		},
		OnFailure: func(message string) {
			defer entry.finish()
			if !s.beginOutcome() {
				return
			}
			defer s.inflight.Done()
			s.forget(id, entry)
			s.taskFailed(id, message)
		},
	})
	if err != nil {
		return err
	}

	entry.handle = handle
	s.active[id] = entry
	return nil
}

// beginOutcome registers an outcome callback. It reports false once Shutdown
// has started, leaving the record running for the next start.
func (s *RestoreService) beginOutcome() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.inflight.Add(1)
	return true
}

func (s *RestoreService) take(id string) *activeRestore {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.active[id]
	delete(s.active, id)
	return entry
}

func (s *RestoreService) forget(id string, entry *activeRestore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[id] == entry {
		delete(s.active, id)
	}
}

// current reloads a restore and reports whether it still awaits an outcome.
func (s *RestoreService) current(id string) (*models.Restore, bool) {
	restore, err := s.repository.GetRestore(id)
	if err != nil {
		slog.Error("failed to load restore", "restore_id", id, "error", err)
		return nil, false
	}
	return restore, restore.IsActive()
}

func (s *RestoreService) complete(id, location string) {
	restore, ok := s.current(id)
	if !ok {
		return
	}

	restore.TaskState = models.TaskStateSuccess

	localPath, n, err := s.download(restore, location)
	if err != nil && s.ctx.Err() != nil {
		slog.Info("archive download interrupted by shutdown, restore left running",
			"restore_id", id, "location", location)
		return
	}
	if err != nil {
		slog.Error("failed to download restore archive", "restore_id", id, "location", location, "error", err)
		restore.Location = location
		s.fail(restore, fmt.Sprintf("Download failed: %v", err))
		s.notifier.Notify(models.LevelError,
			strings.TrimSpace(notifications.RestoreFailedMessage(restore)),
			s.config.GetPoller().ErrorNotifyTimeout)
		return
	}

	restore.MarkCompleted(location, localPath, n)
	if err := s.repository.UpdateRestore(restore); err != nil {
		slog.Error("failed to update restore", "restore_id", id, "error", err)
	}
	s.recordDuration(restore)

	slog.Info("restore completed", "restore_id", id, "path", localPath, "bytes", n)
	s.notifier.Notify(models.LevelSuccess, strings.TrimSpace(notifications.RestoreCompletedMessage(restore)), 0)
}

func (s *RestoreService) taskFailed(id, message string) {
	restore, ok := s.current(id)
	if !ok {
		return
	}
	restore.TaskState = models.TaskStateFailure
	s.fail(restore, message)
}

func (s *RestoreService) fail(restore *models.Restore, message string) {
	restore.MarkFailed(message)
	if err := s.repository.UpdateRestore(restore); err != nil {
		slog.Error("failed to mark restore as failed", "restore_id", restore.ID, "error", err)
	}
	s.recordDuration(restore)
}

func (s *RestoreService) download(restore *models.Restore, location string) (string, int64, error) {
	dir := s.config.GetTasks().DownloadDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create download directory: %w", err)
	}

	name := sanitizer.ArchiveFilename(restore.Client, restore.Server, restore.Backup, s.clock.Now(), restore.Request.Format)
	target := filepath.Join(dir, name)
	partial := target + ".part"

	f, err := os.Create(partial)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create archive file: %w", err)
	}

	n, err := s.client.Download(s.ctx, location, f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close archive file: %w", closeErr)
	}
	if err != nil {
		os.Remove(partial)
		return "", 0, err
	}

	if err := os.Rename(partial, target); err != nil {
		os.Remove(partial)
		return "", 0, fmt.Errorf("failed to finalize archive file: %w", err)
	}

	return target, n, nil
}

func (s *RestoreService) recordDuration(restore *models.Restore) {
	if restore.StartedAt == nil || restore.CompletedAt == nil {
		return
	}
	s.metrics.RecordRestoreDuration(string(restore.Status), restore.CompletedAt.Sub(*restore.StartedAt))
}
