package watch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/events"
	"github.com/footprint-tools/hookwatch/internal/format"
	"github.com/footprint-tools/hookwatch/internal/log"
	"github.com/footprint-tools/hookwatch/internal/poll"
	"github.com/footprint-tools/hookwatch/internal/usage"
	"github.com/stretchr/testify/require"
)

var sampleEvents = []domain.Event{
	{Type: domain.EventPush, Author: "alice", ToBranch: "main", Timestamp: "2026-03-01T12:00:00Z"},
	{Type: domain.EventPullRequest, Author: "bob", FromBranch: "feature", ToBranch: "main", Timestamp: "2026-03-01T12:01:00Z"},
	{Type: domain.EventMerge, Author: "carol", FromBranch: "dev", ToBranch: "main", Timestamp: "not a date"},
}

func defaultLayout() format.Layout {
	return format.NewLayout(func(string) (string, bool) { return "", false })
}

func testSession() session {
	return session{
		baseURL:  "http://localhost:5000",
		interval: 15 * time.Second,
		layout:   defaultLayout(),
	}
}

func sized(t *testing.T) model {
	t.Helper()
	m := newModel(testSession())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	return updated.(model)
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(evs []domain.Event) snapshotMsg {
	return snapshotMsg(poll.Snapshot{Events: evs, LastUpdated: time.Now(), Ticks: 1})
}

func TestModel_Screens(t *testing.T) {
	m := sized(t)
	require.Contains(t, m.View(), poll.LoadingMessage)

	m, _ = send(t, m, loaded(sampleEvents))
	view := m.View()
	require.Contains(t, view, "alice pushed to main")
	require.Contains(t, view, "bob submitted a pull request from feature to main")
	require.Contains(t, view, "carol merged branch dev to main")
	require.Contains(t, view, "not a date")
	require.Contains(t, view, "Last updated:")
	require.Contains(t, view, "Real-time Updates")
	require.Contains(t, view, "Recent Events (3)")

	// a failed poll keeps the list but shows the banner instead
	m, _ = send(t, m, snapshotMsg(poll.Snapshot{Events: sampleEvents, Err: poll.FailureMessage, Ticks: 2}))
	view = m.View()
	require.Contains(t, view, poll.FailureMessage)
	require.NotContains(t, view, "alice pushed to main")
	require.Contains(t, view, "failed")

	m, _ = send(t, m, loaded([]domain.Event{}))
	view = m.View()
	require.Contains(t, view, poll.EmptyTitle)
	require.NotContains(t, view, poll.FailureMessage)
}

func TestModel_ErrorBeforeFirstLoad(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, snapshotMsg(poll.Snapshot{Err: poll.FailureMessage, Ticks: 1}))
	require.Contains(t, m.View(), poll.FailureMessage)
	require.NotContains(t, m.View(), poll.LoadingMessage)
}

func TestModel_ViewBeforeSize(t *testing.T) {
	require.Equal(t, "Loading...", newModel(testSession()).View())
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		t.Run(msg.String(), func(t *testing.T) {
			quits := 0
			m := sized(t)
			m.quit = func() { quits++ }

			_, cmd := send(t, m, msg)

			require.NotNil(t, cmd)
			require.IsType(t, tea.QuitMsg{}, cmd())
			require.Equal(t, 1, quits)
		})
	}
}

func TestModel_Refresh(t *testing.T) {
	refreshes := 0
	m := sized(t)
	m.refresh = func() { refreshes++ }

	_, cmd := send(t, m, runes("r"))

	require.Nil(t, cmd)
	require.Equal(t, 1, refreshes)
}

func TestModel_Navigation(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, loaded(sampleEvents))

	m, _ = send(t, m, runes("j"))
	require.Equal(t, 1, m.cursor)
	m, _ = send(t, m, runes("G"))
	require.Equal(t, 2, m.cursor)
	m, _ = send(t, m, runes("j"))
	require.Equal(t, 2, m.cursor)
	m, _ = send(t, m, runes("g"))
	require.Equal(t, 0, m.cursor)
	m, _ = send(t, m, runes("k"))
	require.Equal(t, 0, m.cursor)
}

func TestModel_ScrollHoldsPosition(t *testing.T) {
	var evs []domain.Event
	for i := range 40 {
		evs = append(evs, domain.Event{Type: domain.EventPush, Author: fmt.Sprintf("user%02d", i), ToBranch: "main", Timestamp: "2026-03-01T12:00:00Z"})
	}
	m, _ := send(t, sized(t), loaded(evs))
	rows := m.listHeight()
	require.Equal(t, 25, rows)

	for range 30 {
		m, _ = send(t, m, runes("j"))
	}
	require.Equal(t, 30, m.cursor)
	require.Equal(t, 30-rows+1, m.scroll)

	// moving up inside the window keeps it where it is
	for range 3 {
		m, _ = send(t, m, runes("k"))
	}
	require.Equal(t, 27, m.cursor)
	require.Equal(t, 6, m.scroll)
	view := m.View()
	require.Contains(t, view, "user06 pushed to main")
	require.NotContains(t, view, "user05 pushed to main")

	m, _ = send(t, m, runes("G"))
	require.Equal(t, 39, m.cursor)
	require.Equal(t, 40-rows, m.scroll)

	m, _ = send(t, m, runes("g"))
	require.Equal(t, 0, m.scroll)
}

func TestModel_SelectionFollowsEvent(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, loaded(sampleEvents))
	m, _ = send(t, m, runes("j"))

	newer := domain.Event{Type: domain.EventPush, Author: "dave", ToBranch: "main", Timestamp: "2026-03-01T12:02:00Z"}
	m, _ = send(t, m, loaded(append([]domain.Event{newer}, sampleEvents...)))

	row, ok := m.selectedRow()
	require.True(t, ok)
	require.Equal(t, "bob", row.Event.Author)
	require.Equal(t, 2, m.cursor)
}

func TestModel_Drawer(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, loaded(sampleEvents))
	m, _ = send(t, m, runes("j"))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.drawerOpen)
	view := m.View()
	require.Contains(t, view, "EVENT")
	require.Contains(t, view, "feature")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, cmd)
	require.False(t, m.drawerOpen)
}

func TestModel_DrawerNeedsRows(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.drawerOpen)
}

func TestModel_Filter(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, loaded(sampleEvents))

	m, _ = send(t, m, runes("2"))
	rows := m.visibleRows()
	require.Len(t, rows, 1)
	require.Equal(t, domain.KindPullRequest, rows[0].Kind)
	require.NotContains(t, m.View(), "alice pushed to main")

	m, _ = send(t, m, runes("1"))
	require.Len(t, m.visibleRows(), 2)

	m, _ = send(t, m, runes("1"))
	m, _ = send(t, m, runes("2"))
	m, _ = send(t, m, runes("4"))
	require.Empty(t, m.visibleRows())
	require.Contains(t, m.View(), "No events match the filter")

	m, _ = send(t, m, runes("c"))
	require.Len(t, m.visibleRows(), 3)
}

func TestModel_StatusCounts(t *testing.T) {
	m := sized(t)
	m, _ = send(t, m, loaded(sampleEvents))

	view := m.View()
	require.Contains(t, view, "localhost:5000")
	require.Contains(t, view, "15s")
	require.Regexp(t, `1 ↑ push\s+1`, view)
	require.Regexp(t, `4 • other\s+0`, view)
}

func TestRenderPlain(t *testing.T) {
	layout := defaultLayout()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		snap poll.Snapshot
		want []string
		not  []string
	}{
		{
			name: "loading",
			snap: poll.Snapshot{Loading: true},
			want: []string{"Last updated: never", poll.LoadingMessage},
		},
		{
			name: "rows",
			snap: poll.Snapshot{Events: sampleEvents, LastUpdated: at},
			want: []string{"Last updated: 12:00:00", "↑ alice pushed to main  [push]", "⑂ carol merged branch dev to main  [merge]  not a date"},
		},
		{
			name: "error replaces rows",
			snap: poll.Snapshot{Events: sampleEvents, Err: poll.FailureMessage, LastUpdated: at},
			want: []string{"! " + poll.FailureMessage},
			not:  []string{"alice"},
		},
		{
			name: "empty",
			snap: poll.Snapshot{Events: []domain.Event{}, LastUpdated: at},
			want: []string{poll.EmptyTitle, poll.EmptyHint},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderPlain(tt.snap, layout)
			require.True(t, strings.HasSuffix(out, "\n\n"))
			for _, w := range tt.want {
				require.Contains(t, out, w)
			}
			for _, n := range tt.not {
				require.NotContains(t, out, n)
			}
		})
	}
}

type fakeSource struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSource) FetchEvents(context.Context) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return sampleEvents, nil
}

// chanWriter forwards every write to a channel.
type chanWriter chan string

func (w chanWriter) Write(p []byte) (int, error) {
	w <- string(p)
	return len(p), nil
}

func watchDeps(ctx context.Context, cancel context.CancelFunc, src domain.EventSource, out chanWriter) Deps {
	return Deps{
		Settings: func(urlOverride string) (events.Settings, error) {
			get := func(string) (string, bool) { return "", false }
			return events.LoadSettings(get, urlOverride)
		},
		Source:     func(events.Settings) domain.EventSource { return src },
		IsTerminal: func() bool { return false },
		Layout:     defaultLayout,
		Logger:     log.NopLogger{},
		Stdout:     out,
		Context:    func() (context.Context, context.CancelFunc) { return ctx, cancel },
	}
}

func TestWatch_PlainStream(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, "alice pushed to main"},
		{"failure", errors.New("connection refused"), poll.FailureMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			src := &fakeSource{err: tt.err}
			out := make(chanWriter, 8)
			deps := watchDeps(ctx, cancel, src, out)

			done := make(chan error, 1)
			go func() {
				done <- watch(nil, dispatchers.NewParsedFlags([]string{"--interval=1h", "--url=http://localhost:5000"}), deps)
			}()

			require.Contains(t, <-out, "Watching http://localhost:5000 every 1h0m0s")
			select {
			case block := <-out:
				require.Contains(t, block, tt.want)
			case <-time.After(2 * time.Second):
				t.Fatal("no block written")
			}

			cancel()
			require.NoError(t, <-done)

			src.mu.Lock()
			require.Equal(t, 1, src.calls)
			src.mu.Unlock()
		})
	}
}

func TestWatch_FlagErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		kind  usage.ErrorKind
	}{
		{"bad interval", []string{"--interval=often"}, usage.ErrInvalidValue},
		{"zero interval", []string{"--interval=0"}, usage.ErrInvalidValue},
		{"bad url", []string{"--url=localhost"}, usage.ErrInvalidBackendURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			err := watch(nil, dispatchers.NewParsedFlags(tt.flags), watchDeps(ctx, cancel, &fakeSource{}, make(chanWriter, 8)))

			var ue *usage.Error
			require.ErrorAs(t, err, &ue)
			require.Equal(t, tt.kind, ue.Kind)
		})
	}
}

func TestWrap(t *testing.T) {
	require.Equal(t, []string{"short"}, wrap("short", 10))
	require.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	require.Equal(t, []string{"x y"}, wrap("x y", 0))
}

func TestHostOf(t *testing.T) {
	require.Equal(t, "localhost:5000", hostOf("http://localhost:5000"))
	require.Equal(t, "example.com/hooks", hostOf("https://example.com/hooks"))
	require.Equal(t, "not a url", hostOf("not a url"))
}
