// Package poll owns the refresh loop: a View holding the latest fetch
// result and a Poller driving it on a fixed interval.
package poll

import (
	"sync"
	"time"

	"github.com/footprint-tools/hookwatch/internal/domain"
)

// FailureMessage is what users see when a poll fails. The cause goes to
// the log only.
const FailureMessage = "Failed to load events. Please check if the backend is running."

// Texts of the other non-list screens.
const (
	LoadingMessage = "Loading events..."
	EmptyTitle     = "No Events Yet"
	EmptyHint      = "Waiting for GitHub webhook events. Make sure your webhook is configured correctly."
)

// State is the coarse phase of a View.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Screen is what the rendering surface should show.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenError
	ScreenEmpty
	ScreenList
)

// Snapshot is a copy of a View at one instant. Events is shared with the
// View and must not be modified.
type Snapshot struct {
	Events      []domain.Event
	Err         string
	Loading     bool
	InFlight    bool
	LastUpdated time.Time
	Ticks       int
}

// Screen picks the region to render: a spinner on the very first load,
// the error banner instead of the list after a failure, the empty
// message for an empty list, the rows otherwise.
func (s Snapshot) Screen() Screen {
	switch {
	case s.Loading && s.Events == nil:
		return ScreenLoading
	case s.Err != "":
		return ScreenError
	case len(s.Events) == 0:
		return ScreenEmpty
	default:
		return ScreenList
	}
}

func (s Snapshot) State() State {
	switch {
	case s.Err != "":
		return StateFailed
	case s.Loading:
		return StateLoading
	default:
		return StateLoaded
	}
}

// View is the mutable state of one watch session.
type View struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewView() *View {
	return &View{snap: Snapshot{Loading: true}}
}

// Begin starts a tick: the previous error is cleared.
func (v *View) Begin() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Err = ""
	v.snap.InFlight = true
}

// Succeed replaces the held list wholesale. A nil list is stored as empty
// so that the first successful load never reads as "no data yet".
func (v *View) Succeed(events []domain.Event, at time.Time) {
	if events == nil {
		events = []domain.Event{}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Events = events
	v.snap.LastUpdated = at
}

// Fail sets the fixed user message. The held list is kept.
func (v *View) Fail() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Err = FailureMessage
}

// Finish ends a tick and returns the resulting snapshot.
func (v *View) Finish() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Loading = false
	v.snap.InFlight = false
	v.snap.Ticks++
	return v.snap
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap
}
