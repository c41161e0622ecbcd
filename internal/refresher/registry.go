// Package refresher holds the views that are re-fetched when the running
// state changes.
package refresher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"burpwatch/internal/models"

	"golang.org/x/sync/errgroup"
)

// Func re-fetches one view.
type Func func(ctx context.Context) error

// Registry is the set of refresh callbacks wired for one process. Which views
// are registered depends on the command, not on the poller.
type Registry struct {
	timeout     time.Duration
	concurrency int

	mu    sync.RWMutex
	funcs map[string]Func
}

func NewRegistry(timeout time.Duration, concurrency int) *Registry {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Registry{
		timeout:     timeout,
		concurrency: concurrency,
		funcs:       make(map[string]Func),
	}
}

// Register adds or replaces the view called name.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.funcs, name)
}

// Names returns the registered views in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Refresh runs every registered view and returns the joined failures. One
// failing or panicking view does not stop the others.
func (r *Registry) Refresh(ctx context.Context) error {
	r.mu.RLock()
	funcs := make(map[string]Func, len(r.funcs))
	for name, fn := range r.funcs {
		funcs[name] = fn
	}
	r.mu.RUnlock()

	if len(funcs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
	)

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for name, fn := range funcs {
		g.Go(func() error {
			if err := run(ctx, name, fn); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return errors.Join(errs...)
}

// OnStateChange adapts the registry to the poller's subscriber signature.
func (r *Registry) OnStateChange(ctx context.Context, state models.RunningState) error {
	slog.Debug("refreshing views", "running", state.Running, "views", len(r.Names()))
	return r.Refresh(ctx)
}

func run(ctx context.Context, name string, fn Func) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("view refresh panicked", "view", name, "panic", rec, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(ctx)
}
