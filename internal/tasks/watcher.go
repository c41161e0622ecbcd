package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"burpwatch/internal/burpui"
	"burpwatch/internal/clock"
	"burpwatch/internal/interfaces"
	"burpwatch/internal/models"
)

// IDPlaceholder is replaced by the task id in status URL templates.
const IDPlaceholder = "{id}"

var (
	ErrInvalidTemplate = errors.New("status URL template must contain {id} and form a valid URL")
	ErrInvalidInterval = errors.New("task poll interval must be positive")
	ErrEmptyTaskID     = errors.New("task id is required")
)

// Callbacks are invoked at most once per handle, and never after Cancel.
type Callbacks struct {
	OnSuccess func(location string)
	OnFailure func(message string)
}

// Recorder receives task metrics. A nil Recorder disables metrics.
type Recorder interface {
	RecordTaskPoll(result string)
	RecordTaskOutcome(outcome string)
}

type Options struct {
	Clock             clock.Clock
	TransientStatuses []int
	RequestTimeout    time.Duration
	CancelTimeout     time.Duration
	NotifyTimeout     time.Duration
	Metrics           Recorder
}

// Watcher polls asynchronous burp-ui tasks until they finish.
type Watcher struct {
	client    interfaces.TaskClient
	notifier  interfaces.Notifier
	clock     clock.Clock
	metrics   Recorder
	opts      Options
	transient map[int]bool

	mu      sync.Mutex
	handles map[*Handle]struct{}
	// cancels tracks fire-and-forget DELETE requests so Wait can drain them.
	cancels sync.WaitGroup
}

func NewWatcher(client interfaces.TaskClient, notifier interfaces.Notifier, opts Options) *Watcher {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Metrics == nil {
		opts.Metrics = nopRecorder{}
	}
	if opts.TransientStatuses == nil {
		opts.TransientStatuses = []int{502, 503, 504}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.CancelTimeout <= 0 {
		opts.CancelTimeout = 10 * time.Second
	}
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = 10 * time.Second
	}

	transient := make(map[int]bool, len(opts.TransientStatuses))
	for _, code := range opts.TransientStatuses {
		transient[code] = true
	}

	return &Watcher{
		client:    client,
		notifier:  notifier,
		clock:     opts.Clock,
		metrics:   opts.Metrics,
		opts:      opts,
		transient: transient,
		handles:   make(map[*Handle]struct{}),
	}
}

// ExpandStatusURL substitutes taskID into template. The result must be an
// absolute URL or a path starting with "/".
func ExpandStatusURL(template, taskID string) (string, error) {
	if !strings.Contains(template, IDPlaceholder) {
		return "", ErrInvalidTemplate
	}

	expanded := strings.ReplaceAll(template, IDPlaceholder, url.PathEscape(taskID))
	u, err := url.Parse(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if !u.IsAbs() && !strings.HasPrefix(expanded, "/") {
		return "", fmt.Errorf("%w: %q is neither absolute nor rooted", ErrInvalidTemplate, expanded)
	}
	if u.IsAbs() && u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidTemplate, expanded)
	}
	return expanded, nil
}

// Watch starts polling the task. The first check happens one interval after
// the call.
func (w *Watcher) Watch(taskID, template string, interval time.Duration, cb Callbacks) (*Handle, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrEmptyTaskID
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	statusURL, err := ExpandStatusURL(template, taskID)
	if err != nil {
		return nil, err
	}

	h := &Handle{
		watcher:   w,
		taskID:    taskID,
		statusURL: statusURL,
		interval:  interval,
		callbacks: cb,
		state:     HandleWatching,
		done:      make(chan struct{}),
	}

	w.mu.Lock()
	w.handles[h] = struct{}{}
	w.mu.Unlock()

	h.mu.Lock()
	h.timer = w.clock.AfterFunc(interval, h.tick)
	h.mu.Unlock()

	slog.Info("watching task", "task_id", taskID, "status_url", statusURL, "interval", interval)
	return h, nil
}

// Active returns the number of handles still polling.
func (w *Watcher) Active() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.handles)
}

// StopAll stops every handle without asking burp-ui to drop the tasks, so
// they can be picked up again after a restart.
func (w *Watcher) StopAll() {
	w.mu.Lock()
	handles := make([]*Handle, 0, len(w.handles))
	for h := range w.handles {
		handles = append(handles, h)
	}
	w.mu.Unlock()

	for _, h := range handles {
		h.Stop()
	}
}

// Wait blocks until all pending cancel requests have been sent.
func (w *Watcher) Wait() {
	w.cancels.Wait()
}

func (w *Watcher) forget(h *Handle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.handles, h)
}

func (w *Watcher) sendCancel(taskID, statusURL string) {
	w.cancels.Add(1)
	go func() {
		defer w.cancels.Done()

		ctx, cancel := context.WithTimeout(context.Background(), w.opts.CancelTimeout)
		defer cancel()

		if err := w.client.CancelTask(ctx, statusURL); err != nil {
			slog.Warn("failed to cancel task", "task_id", taskID, "error", err)
			return
		}
		slog.Debug("task cancel sent", "task_id", taskID)
	}()
}

type verdict int

const (
	verdictPending verdict = iota
	verdictSuccess
	verdictFailure
)

// classify maps one status answer onto pending, success or failure.
// Transient HTTP statuses and transport errors keep the task pending.
func (w *Watcher) classify(status *models.TaskStatus, err error) (verdict, string, string) {
	if err != nil {
		var httpErr *burpui.HTTPError
		switch {
		case errors.As(err, &httpErr):
			if w.transient[httpErr.StatusCode] {
				return verdictPending, "transient", ""
			}
			return verdictFailure, "http_error", httpErr.Message
		case errors.Is(err, burpui.ErrUnexpectedShape):
			return verdictPending, "unexpected_shape", ""
		default:
			return verdictPending, "network_error", ""
		}
	}

	switch {
	case status == nil:
		return verdictPending, "pending", ""
	case status.IsSuccess():
		return verdictSuccess, "success", status.Location
	case status.IsFailure():
		msg := status.Message
		if msg == "" {
			msg = fmt.Sprintf("task ended in state %s", status.State)
		}
		return verdictFailure, "failure", msg
	default:
		return verdictPending, "pending", ""
	}
}

type nopRecorder struct{}

func (nopRecorder) RecordTaskPoll(string)    {}
func (nopRecorder) RecordTaskOutcome(string) {}

// HandleState is the lifecycle of a watched task.
type HandleState string

const (
	HandleWatching  HandleState = "watching"
	HandleSucceeded HandleState = "succeeded"
	HandleFailed    HandleState = "failed"
	HandleCancelled HandleState = "cancelled"
	HandleStopped   HandleState = "stopped"
)

// Handle controls one watched task. At most one status request is
// outstanding per handle.
type Handle struct {
	watcher   *Watcher
	taskID    string
	statusURL string
	interval  time.Duration
	callbacks Callbacks

	mu        sync.Mutex
	state     HandleState
	timer     clock.Timer
	cancelReq context.CancelFunc
	done      chan struct{}
}

func (h *Handle) TaskID() string {
	return h.taskID
}

func (h *Handle) StatusURL() string {
	return h.statusURL
}

func (h *Handle) State() HandleState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Done is closed once the handle leaves the watching state.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel stops polling, aborts the request in flight and asks burp-ui to
// drop the task. Calling it again, or after the task finished, does nothing.
func (h *Handle) Cancel() {
	if !h.halt(HandleCancelled) {
		return
	}
	h.watcher.metrics.RecordTaskOutcome(string(HandleCancelled))
	slog.Info("task watch cancelled", "task_id", h.taskID)
	h.watcher.sendCancel(h.taskID, h.statusURL)
}

// Stop ends polling without notifying burp-ui.
func (h *Handle) Stop() {
	if h.halt(HandleStopped) {
		slog.Debug("task watch stopped", "task_id", h.taskID)
	}
}

func (h *Handle) halt(state HandleState) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != HandleWatching {
		return false
	}
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	if h.cancelReq != nil {
		h.cancelReq()
		h.cancelReq = nil
	}
	h.finishLocked(state)
	return true
}

// finishLocked must be called with h.mu held.
func (h *Handle) finishLocked(state HandleState) {
	h.state = state
	close(h.done)
	h.watcher.forget(h)
}

func (h *Handle) tick() {
	h.mu.Lock()
	if h.state != HandleWatching {
		h.mu.Unlock()
		return
	}
	h.timer = nil
	ctx, cancel := context.WithTimeout(context.Background(), h.watcher.opts.RequestTimeout)
	h.cancelReq = cancel
	h.mu.Unlock()

	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("task poll panicked", "task_id", h.taskID, "panic", r, "stack", string(debug.Stack()))
			h.mu.Lock()
			defer h.mu.Unlock()
			h.cancelReq = nil
			if h.state == HandleWatching && h.timer == nil {
				h.timer = h.watcher.clock.AfterFunc(h.interval, h.tick)
			}
		}
	}()

	status, err := h.watcher.client.TaskStatus(ctx, h.statusURL)

	h.mu.Lock()
	h.cancelReq = nil
	if h.state != HandleWatching {
		h.mu.Unlock()
		return
	}

	v, result, detail := h.watcher.classify(status, err)
	h.watcher.metrics.RecordTaskPoll(result)

	switch v {
	case verdictSuccess:
		h.finishLocked(HandleSucceeded)
	case verdictFailure:
		h.finishLocked(HandleFailed)
	default:
		h.timer = h.watcher.clock.AfterFunc(h.interval, h.tick)
		h.mu.Unlock()
		if err != nil {
			slog.Debug("task still pending after error", "task_id", h.taskID, "result", result, "error", err)
		}
		return
	}
	h.mu.Unlock()

	switch v {
	case verdictSuccess:
		h.watcher.metrics.RecordTaskOutcome(string(HandleSucceeded))
		slog.Info("task succeeded", "task_id", h.taskID, "location", detail)
		if h.callbacks.OnSuccess != nil {
			h.callbacks.OnSuccess(detail)
		}
	case verdictFailure:
		h.watcher.metrics.RecordTaskOutcome(string(HandleFailed))
		slog.Warn("task failed", "task_id", h.taskID, "message", detail)
		h.watcher.notifier.Notify(models.LevelError,
			fmt.Sprintf("Task %s failed: %s", h.taskID, detail),
			h.watcher.opts.NotifyTimeout)
		if h.callbacks.OnFailure != nil {
			h.callbacks.OnFailure(detail)
		}
	}
}
