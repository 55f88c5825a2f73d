package poll

import (
	"context"
	"sync"
	"time"

	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/log"
)

// DefaultInterval is the time between ticks.
const DefaultInterval = 15 * time.Second

// Poller runs ticks against a View: one immediately on Start, then one
// per interval until Stop. Ticks never overlap; a slow fetch delays the
// next tick and missed ticks are dropped.
type Poller struct {
	source    domain.EventSource
	view      *View
	interval  time.Duration
	now       func() time.Time
	logger    domain.Logger
	observer  func(Snapshot)
	newTicker func(time.Duration) (<-chan time.Time, func())

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	refresh chan struct{}
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the tick period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithClock replaces time.Now when stamping a successful fetch.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

// WithLogger sets the logger for tick results.
func WithLogger(l domain.Logger) Option {
	return func(p *Poller) { p.logger = l }
}

// WithObserver registers fn to receive a snapshot when a tick starts
// (InFlight set) and when it completes. fn runs on the poll goroutine.
func WithObserver(fn func(Snapshot)) Option {
	return func(p *Poller) { p.observer = fn }
}

// WithTicker replaces time.NewTicker, for tests.
func WithTicker(fn func(time.Duration) (<-chan time.Time, func())) Option {
	return func(p *Poller) { p.newTicker = fn }
}

func NewPoller(source domain.EventSource, opts ...Option) *Poller {
	p := &Poller{
		source:   source,
		view:     NewView(),
		interval: DefaultInterval,
		now:      time.Now,
		logger:   log.Default(),
		observer: func(Snapshot) {},
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
		refresh: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Poller) View() *View { return p.view }

func (p *Poller) Interval() time.Duration { return p.interval }

// Start launches the poll goroutine. It is a no-op while already running.
// Cancelling ctx has the same effect as Stop, minus the wait.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.loop(ctx, p.done)
}

// Stop cancels the timer and any in-flight fetch and waits for the poll
// goroutine to exit. No fetch is issued after Stop returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Refresh asks for an extra tick as soon as the current one finishes.
// Requests made while one is already pending collapse into it.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticks, stop := p.newTicker(p.interval)
	defer stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			p.tick(ctx)
		case <-p.refresh:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	p.view.Begin()
	p.observer(p.view.Snapshot())

	events, err := p.source.FetchEvents(ctx)
	if ctx.Err() != nil {
		// stopped mid-flight, the view is going away
		return
	}

	if err != nil {
		p.logger.Warn("poll: fetch events: %v", err)
		p.view.Fail()
	} else {
		p.view.Succeed(events, p.now())
		p.logger.Debug("poll: %d events", len(events))
	}

	p.observer(p.view.Finish())
}
