package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"burpwatch/internal/clock"
	"burpwatch/internal/interfaces"
	"burpwatch/internal/models"

	"golang.org/x/sync/singleflight"
)

// ErrInvalidInterval is returned by Start when an interval is not positive.
var ErrInvalidInterval = errors.New("poll intervals must be positive")

// Subscriber is told about every running-state transition.
type Subscriber func(ctx context.Context, state models.RunningState) error

// Recorder receives poll metrics. A nil Recorder disables metrics.
type Recorder interface {
	RecordPoll(result string)
	RecordStateChange()
	SetRunning(running bool)
	SetPollInterval(d time.Duration)
}

type Options struct {
	ThrottleWindow     time.Duration
	RequestTimeout     time.Duration
	ErrorNotifyTimeout time.Duration
	ReportMode         bool
	Clock              clock.Clock
	Metrics            Recorder
}

// Poller keeps track of whether burp-ui is running something. It polls at
// the idle interval until a backup shows up, then at the fast interval until
// it is gone. Only one timer is ever armed.
type Poller struct {
	fetcher  interfaces.StatusFetcher
	notifier interfaces.Notifier
	clock    clock.Clock
	metrics  Recorder
	opts     Options

	mu          sync.Mutex
	scope       models.Scope
	idle        time.Duration
	fast        time.Duration
	cadence     models.Cadence
	interval    time.Duration
	timer       clock.Timer
	generation  uint64
	genCtx      context.Context
	genCancel   context.CancelFunc
	nextSeq     uint64
	appliedSeq  uint64
	state       models.RunningState
	observed    bool
	lastPoll    time.Time
	lastAttempt time.Time
	subscribers map[string]Subscriber

	// deliverMu orders subscriber calls; deliveredSeq is the newest
	// sequence handed to subscribers.
	deliverMu    sync.Mutex
	deliveredSeq uint64

	running atomic.Bool
	forced  singleflight.Group
}

type pollOutcome struct {
	discarded bool
	stale     bool
	changed   bool
}

func New(fetcher interfaces.StatusFetcher, notifier interfaces.Notifier, opts Options) *Poller {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Metrics == nil {
		opts.Metrics = nopRecorder{}
	}
	if opts.ThrottleWindow <= 0 {
		opts.ThrottleWindow = 5 * time.Second
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if opts.ErrorNotifyTimeout <= 0 {
		opts.ErrorNotifyTimeout = 10 * time.Second
	}

	return &Poller{
		fetcher:     fetcher,
		notifier:    notifier,
		clock:       opts.Clock,
		metrics:     opts.Metrics,
		opts:        opts,
		cadence:     models.CadenceStopped,
		scope:       models.Scope{Kind: models.ScopeGlobal},
		subscribers: make(map[string]Subscriber),
	}
}

// Start begins polling scope. Calling it again cancels the running schedule
// first, so there is never more than one timer. The last observation is kept
// as the baseline when the scope does not change.
func (p *Poller) Start(scope models.Scope, idle, fast time.Duration) error {
	if scope.Kind == "" {
		scope.Kind = models.ScopeGlobal
	}
	if err := scope.Validate(); err != nil {
		return fmt.Errorf("invalid scope: %w", err)
	}
	if idle <= 0 || fast <= 0 {
		return ErrInvalidInterval
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.generation++
	p.genCtx, p.genCancel = context.WithCancel(context.Background())

	if scope != p.scope {
		p.state = models.RunningState{}
		p.observed = false
		p.lastPoll = time.Time{}
		p.lastAttempt = time.Time{}
		p.running.Store(false)
		p.metrics.SetRunning(false)
	}
	p.scope = scope
	p.idle = idle
	p.fast = fast

	if p.opts.ReportMode {
		p.cadence = models.CadenceReport
		p.interval = 0
		slog.Info("status poller in report mode, automatic refresh disabled", "scope", scope.String())
		return nil
	}

	if p.observed && p.state.Running {
		p.setCadenceLocked(models.CadenceFast)
	} else {
		p.setCadenceLocked(models.CadenceIdle)
	}
	p.armLocked(0)

	slog.Info("status poller started",
		"scope", scope.String(),
		"idle_interval", idle,
		"fast_interval", fast)
	return nil
}

// Stop cancels the pending tick and any request in flight. Results of that
// request are discarded. Safe to call when already stopped.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cadence == models.CadenceStopped {
		return
	}
	p.stopLocked()
	p.generation++
	p.cadence = models.CadenceStopped
	p.interval = 0
	slog.Info("status poller stopped", "scope", p.scope.String())
}

// Register adds or replaces a named subscriber.
func (p *Poller) Register(name string, sub Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers[name] = sub
}

func (p *Poller) Unregister(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.subscribers, name)
}

// ForcePoll fetches the state out of band. Within the throttle window of the
// last request, failed or not, the cached state is returned without a
// request unless force is set. Concurrent calls share one request, which is
// not cancelled when the caller that started it goes away.
func (p *Poller) ForcePoll(ctx context.Context, force bool) (models.RunningState, error) {
	p.mu.Lock()
	if !force && !p.lastAttempt.IsZero() && p.clock.Now().Sub(p.lastAttempt) < p.opts.ThrottleWindow {
		state := p.state
		p.mu.Unlock()
		p.metrics.RecordPoll("throttled")
		return state, nil
	}
	p.mu.Unlock()

	v, err, _ := p.forced.Do("force", func() (interface{}, error) {
		return p.forcePoll(ctx)
	})
	if err != nil {
		return models.RunningState{}, err
	}
	return v.(models.RunningState), nil
}

func (p *Poller) forcePoll(ctx context.Context) (models.RunningState, error) {
	p.mu.Lock()
	gen := p.generation
	seq := p.nextSequenceLocked()
	scope := p.scope
	p.lastAttempt = p.clock.Now()
	p.mu.Unlock()

	reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.opts.RequestTimeout)
	defer cancel()

	state, err := p.fetcher.FetchRunning(reqCtx, scope)
	outcome := p.handleResult(gen, seq, state, err, true)
	if err != nil {
		return models.RunningState{}, fmt.Errorf("failed to poll running state: %w", err)
	}
	if outcome.stale || outcome.discarded {
		current, _ := p.State()
		return current, nil
	}
	return state, nil
}

// State returns the last applied observation and whether one exists.
func (p *Poller) State() (models.RunningState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.observed
}

// IsRunning reports the last observed running flag without locking.
func (p *Poller) IsRunning() bool {
	return p.running.Load()
}

func (p *Poller) Cadence() models.Cadence {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cadence
}

func (p *Poller) Snapshot() models.StatusSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := models.StatusSnapshot{
		Scope:    p.scope,
		State:    p.state,
		Observed: p.observed,
		Cadence:  p.cadence,
		Interval: p.interval,
		Sequence: p.appliedSeq,
	}
	if !p.lastPoll.IsZero() {
		last := p.lastPoll
		snap.LastPoll = &last
	}
	return snap
}

func (p *Poller) tick(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || !p.activeLocked() {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	seq := p.nextSequenceLocked()
	scope := p.scope
	ctx := p.genCtx
	p.lastAttempt = p.clock.Now()
	p.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("status poll panicked", "panic", r, "stack", string(debug.Stack()))
			p.mu.Lock()
			defer p.mu.Unlock()
			if gen == p.generation && p.activeLocked() && p.timer == nil {
				p.armLocked(p.idle)
			}
		}
	}()

	reqCtx, cancel := context.WithTimeout(ctx, p.opts.RequestTimeout)
	state, err := p.fetcher.FetchRunning(reqCtx, scope)
	cancel()

	p.handleResult(gen, seq, state, err, false)
}

// handleResult applies one response. Responses from an older generation or
// with a sequence number below the last applied one are dropped.
func (p *Poller) handleResult(gen, seq uint64, state models.RunningState, err error, forced bool) pollOutcome {
	var outcome pollOutcome
	var subs []namedSubscriber
	var ctx context.Context
	var scope models.Scope

	func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		if gen != p.generation {
			outcome.discarded = true
			return
		}

		outcome.stale = seq <= p.appliedSeq
		if !outcome.stale {
			p.appliedSeq = seq
			if err == nil {
				wasObserved := p.observed
				previous := p.state

				p.state = state
				p.observed = true
				p.lastPoll = p.clock.Now()
				p.running.Store(state.Running)
				p.metrics.SetRunning(state.Running)

				outcome.changed = wasObserved && !previous.SameAs(state)

				if p.activeLocked() {
					desired := models.CadenceIdle
					if state.Running {
						desired = models.CadenceFast
					}
					if desired != p.cadence {
						p.setCadenceLocked(desired)
						if forced {
							p.armLocked(p.interval)
						}
					}
				}
			} else if !forced && p.activeLocked() {
				p.setCadenceLocked(models.CadenceIdle)
			}
		}

		if !forced && p.activeLocked() && p.timer == nil {
			p.armLocked(p.interval)
		}

		if outcome.changed {
			subs = p.subscribersLocked()
			ctx = p.genCtx
			scope = p.scope
		}
	}()

	switch {
	case outcome.discarded:
		p.metrics.RecordPoll("discarded")
		slog.Debug("discarding status response from a stopped schedule", "seq", seq)
		return outcome
	case outcome.stale:
		p.metrics.RecordPoll("stale")
		slog.Debug("discarding out-of-order status response", "seq", seq)
		return outcome
	case err != nil:
		p.metrics.RecordPoll("error")
		slog.Warn("failed to check running state", "error", err, "forced", forced)
		p.notifier.Notify(models.LevelError,
			fmt.Sprintf("Unable to check running backups: %v", err),
			p.opts.ErrorNotifyTimeout)
		return outcome
	}

	p.metrics.RecordPoll("success")
	slog.Debug("status polled", "running", state.Running, "phase", state.Phase, "percent", state.Percent, "seq", seq)

	if outcome.changed {
		p.metrics.RecordStateChange()
		slog.Info("running state changed",
			"scope", scope.String(),
			"running", state.Running,
			"phase", state.Phase,
			"percent", state.Percent)
		if ctx == nil {
			ctx = context.Background()
		}
		p.deliver(ctx, seq, subs, state)
	}

	return outcome
}

// deliver hands state to subscribers one transition at a time. A transition
// older than one already delivered is skipped.
func (p *Poller) deliver(ctx context.Context, seq uint64, subs []namedSubscriber, state models.RunningState) {
	p.deliverMu.Lock()
	defer p.deliverMu.Unlock()

	if seq < p.deliveredSeq {
		slog.Debug("skipping superseded state change", "seq", seq, "delivered", p.deliveredSeq)
		return
	}
	p.deliveredSeq = seq

	if err := notifySubscribers(ctx, subs, state); err != nil {
		slog.Warn("state change subscribers failed", "error", err)
	}
}

type namedSubscriber struct {
	name string
	fn   Subscriber
}

func (p *Poller) subscribersLocked() []namedSubscriber {
	subs := make([]namedSubscriber, 0, len(p.subscribers))
	for name, fn := range p.subscribers {
		subs = append(subs, namedSubscriber{name: name, fn: fn})
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].name < subs[j].name })
	return subs
}

func notifySubscribers(ctx context.Context, subs []namedSubscriber, state models.RunningState) error {
	var errs []error
	for _, sub := range subs {
		if err := callSubscriber(ctx, sub, state); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sub.name, err))
		}
	}
	return errors.Join(errs...)
}

func callSubscriber(ctx context.Context, sub namedSubscriber, state models.RunningState) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return sub.fn(ctx, state)
}

func (p *Poller) activeLocked() bool {
	return p.cadence == models.CadenceIdle || p.cadence == models.CadenceFast
}

func (p *Poller) setCadenceLocked(c models.Cadence) {
	p.cadence = c
	if c == models.CadenceFast {
		p.interval = p.fast
	} else {
		p.interval = p.idle
	}
	p.metrics.SetPollInterval(p.interval)
}

// armLocked replaces the pending timer.
func (p *Poller) armLocked(delay time.Duration) {
	if p.timer != nil {
		p.timer.Stop()
	}
	gen := p.generation
	p.timer = p.clock.AfterFunc(delay, func() { p.tick(gen) })
}

func (p *Poller) stopLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.genCancel != nil {
		p.genCancel()
		p.genCancel = nil
	}
}

func (p *Poller) nextSequenceLocked() uint64 {
	p.nextSeq++
	return p.nextSeq
}

type nopRecorder struct{}

func (nopRecorder) RecordPoll(string)             {}
func (nopRecorder) RecordStateChange()            {}
func (nopRecorder) SetRunning(bool)               {}
func (nopRecorder) SetPollInterval(time.Duration) {}
