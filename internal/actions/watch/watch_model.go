package watch

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/poll"
	"github.com/footprint-tools/hookwatch/internal/timeline"
	"github.com/footprint-tools/hookwatch/internal/ui/splitpanel"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

// snapshotMsg carries a poll result into the program.
type snapshotMsg poll.Snapshot

// model is the bubbletea model of the interactive timeline. It only
// renders snapshots; the Poller owns fetching.
type model struct {
	session session

	snap poll.Snapshot
	rows []timeline.Row

	// UI dimensions
	width  int
	height int

	cursor     int
	scroll     int // first visible row of the events panel
	drawerOpen bool
	// empty means no filter
	filter map[domain.Kind]bool

	spinner spinner.Model
	keys    keyMap
	help    help.Model
	colors  style.ColorConfig

	refresh func()
	quit    func()
}

func newModel(s session) model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = style.Foreground(style.GetColors().Info)

	return model{
		session: s,
		snap:    poll.Snapshot{Loading: true},
		filter:  make(map[domain.Kind]bool),
		spinner: sp,
		keys:    newKeyMap(),
		help:    help.New(),
		colors:  style.GetColors(),
		refresh: func() {},
		quit:    func() {},
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case snapshotMsg:
		m.applySnapshot(poll.Snapshot(msg))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applySnapshot takes a new poll result. The selected event stays
// selected when it is still in the list.
func (m *model) applySnapshot(s poll.Snapshot) {
	var selected *domain.Event
	if r, ok := m.selectedRow(); ok {
		e := r.Event
		selected = &e
	}

	m.snap = s
	m.rows = timeline.Rows(s.Events, m.session.layout)

	if selected != nil {
		for i, r := range m.visibleRows() {
			if r.Event == *selected {
				m.cursor = i
				break
			}
		}
	}
	m.clampCursor()
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		if m.drawerOpen {
			m.drawerOpen = false
			return m, nil
		}
		m.quit()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.visibleRows()) - 1

	case key.Matches(msg, m.keys.Detail):
		if _, ok := m.selectedRow(); ok {
			m.drawerOpen = !m.drawerOpen
		}

	case key.Matches(msg, m.keys.Filter):
		kind := domain.Kinds[int(msg.Runes[0]-'1')]
		if m.filter[kind] {
			delete(m.filter, kind)
		} else {
			m.filter[kind] = true
		}
		m.cursor = 0

	case key.Matches(msg, m.keys.ClearFilter):
		m.filter = make(map[domain.Kind]bool)
		m.cursor = 0
	}

	m.clampCursor()
	if _, ok := m.selectedRow(); !ok {
		m.drawerOpen = false
	}
	return m, nil
}

// visibleRows applies the type filter.
func (m model) visibleRows() []timeline.Row {
	if len(m.filter) == 0 {
		return m.rows
	}
	var out []timeline.Row
	for _, r := range m.rows {
		if m.filter[r.Kind] {
			out = append(out, r)
		}
	}
	return out
}

func (m model) selectedRow() (timeline.Row, bool) {
	if m.snap.Screen() != poll.ScreenList {
		return timeline.Row{}, false
	}
	rows := m.visibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return timeline.Row{}, false
	}
	return rows[m.cursor], true
}

// clampCursor keeps the cursor on a row and the row in the window.
func (m *model) clampCursor() {
	n := len(m.visibleRows())
	m.cursor = max(min(m.cursor, n-1), 0)
	m.scroll = splitpanel.Window(m.scroll, m.cursor, n, m.listHeight())
}

// listHeight is how many rows the events panel shows.
func (m model) listHeight() int {
	return splitpanel.VisibleHeight(m.mainHeight(), true)
}

func (m model) mainHeight() int {
	return max(m.height-headerHeight-footerHeight, 3)
}
