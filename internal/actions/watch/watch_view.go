package watch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/poll"
	"github.com/footprint-tools/hookwatch/internal/timeline"
	"github.com/footprint-tools/hookwatch/internal/ui/splitpanel"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

const (
	title        = "GitHub Event Monitor"
	liveLabel    = "Real-time Updates"
	headerHeight = 1
	footerHeight = 1
)

// View implements tea.Model
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	mainHeight := m.mainHeight()

	cfg := splitpanel.Config{
		SidebarWidthPercent: 0.22,
		SidebarMinWidth:     22,
		SidebarMaxWidth:     30,
		HasDrawer:           true,
		DrawerWidthPercent:  0.35,
	}
	layout := splitpanel.NewLayout(m.width, cfg, m.colors)
	layout.SetFocus(false)
	layout.SetDrawerOpen(m.drawerOpen)

	sidebar := m.buildStatusPanel()
	events := m.buildEventsPanel(layout)

	var main string
	if m.drawerOpen {
		drawer := m.buildDrawerPanel(layout)
		main = layout.RenderWithDrawer(sidebar, events, &drawer, mainHeight)
	} else {
		main = layout.Render(sidebar, events, mainHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), main, m.renderFooter())
}

func (m model) renderHeader() string {
	titleStyle := style.Foreground(m.colors.Info).Bold(true)
	muted := style.Foreground(m.colors.Muted)
	live := style.Foreground(m.colors.Success)

	left := titleStyle.Render(title)

	right := live.Render("● " + liveLabel)
	if !m.snap.LastUpdated.IsZero() {
		right += muted.Render("  Last updated: " + m.snap.LastUpdated.Local().Format(m.session.layout.ClockFull))
	}

	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderFooter() string {
	return lipgloss.NewStyle().Width(m.width).Padding(0, 1).
		Render(m.help.ShortHelpView(m.keys.short(m.drawerOpen)))
}

func (m model) buildStatusPanel() splitpanel.Panel {
	label := style.Foreground(m.colors.Muted)
	value := style.Foreground(m.colors.Info)
	header := style.Foreground(m.colors.Success).Bold(true)

	state := m.snap.State().String()
	if m.snap.InFlight && !m.snap.Loading {
		state += " " + m.spinner.View()
	}

	stateStyle := value
	if m.snap.State() == poll.StateFailed {
		stateStyle = style.Foreground(m.colors.Error)
	}

	lines := []string{
		label.Render("State:    ") + stateStyle.Render(state),
		label.Render("Every:    ") + value.Render(m.session.interval.String()),
		label.Render("Polls:    ") + value.Render(fmt.Sprintf("%d", m.snap.Ticks)),
		label.Render("Backend:"),
		value.Render("  " + hostOf(m.session.baseURL)),
		"",
		header.Render("BY TYPE"),
	}

	counts := timeline.Counts(m.snap.Events)
	for i, k := range domain.Kinds {
		marker := " "
		if m.filter[k] {
			marker = "*"
		}
		p := timeline.For(k)
		badge := style.Foreground(p.Color(m.colors)).Render(fmt.Sprintf("%s %-12s", p.Icon, timeline.Label(domain.EventType(k.String()))))
		lines = append(lines, fmt.Sprintf("%s%d %s %s", marker, i+1, badge, value.Render(fmt.Sprintf("%d", counts[k]))))
	}

	return splitpanel.Panel{Title: "STATUS", Lines: lines}
}

func (m model) buildEventsPanel(layout *splitpanel.Layout) splitpanel.Panel {
	muted := style.Foreground(m.colors.Muted)
	width := layout.MainContentWidth()

	panelTitle := fmt.Sprintf("Recent Events (%d)", len(m.snap.Events))

	switch m.snap.Screen() {
	case poll.ScreenLoading:
		return splitpanel.Panel{
			Title: "Recent Events",
			Lines: []string{"", m.spinner.View() + " " + poll.LoadingMessage},
		}

	case poll.ScreenError:
		banner := style.Foreground(m.colors.Error).Bold(true)
		lines := []string{""}
		for _, l := range wrap("⚠ "+m.snap.Err, width) {
			lines = append(lines, banner.Render(l))
		}
		lines = append(lines, "", muted.Render("Retrying every "+m.session.interval.String()+", r retries now"))
		return splitpanel.Panel{Title: panelTitle, Lines: lines}

	case poll.ScreenEmpty:
		lines := []string{"", style.Foreground(m.colors.Header).Bold(true).Render(poll.EmptyTitle)}
		for _, l := range wrap(poll.EmptyHint, width) {
			lines = append(lines, muted.Render(l))
		}
		return splitpanel.Panel{Title: panelTitle, Lines: lines}
	}

	rows := m.visibleRows()
	if len(rows) == 0 {
		return splitpanel.Panel{
			Title: panelTitle,
			Lines: []string{muted.Italic(true).Render("No events match the filter (c to clear)")},
		}
	}

	visibleHeight := m.listHeight()
	var lines []string
	for i := m.scroll; i < len(rows) && len(lines) < visibleHeight; i++ {
		lines = append(lines, m.formatRow(rows[i], i == m.cursor))
	}

	return splitpanel.Panel{
		Title:      panelTitle,
		Lines:      lines,
		ScrollPos:  m.scroll,
		TotalItems: len(rows),
	}
}

func (m model) formatRow(r timeline.Row, selected bool) string {
	if selected {
		line := fmt.Sprintf("> %s %s  [%s]  %s", r.Icon, r.Message, r.Label, r.When)
		if !style.Enabled() {
			return line
		}
		return lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(m.colors.Info)).
			Render(line)
	}

	p := timeline.For(r.Kind)
	badge := style.Foreground(p.Color(m.colors))
	when := style.Foreground(m.colors.Muted)
	return "  " + badge.Render(r.Icon) + " " + r.Message + "  " + badge.Render("["+r.Label+"]") + "  " + when.Render(r.When)
}

func (m model) buildDrawerPanel(layout *splitpanel.Layout) splitpanel.Panel {
	r, ok := m.selectedRow()
	if !ok {
		return splitpanel.Panel{Title: "EVENT", Lines: []string{"No event selected"}}
	}

	label := style.Foreground(m.colors.Muted)
	value := style.Foreground(m.colors.Info)
	e := r.Event

	lines := []string{
		label.Render("Type"),
		"  " + style.Foreground(timeline.For(r.Kind).Color(m.colors)).Render(string(e.Type)),
		label.Render("Author"),
		"  " + value.Render(e.Author),
	}
	if e.FromBranch != "" {
		lines = append(lines, label.Render("From"), "  "+value.Render(e.FromBranch))
	}
	lines = append(lines,
		label.Render("To"),
		"  "+value.Render(e.ToBranch),
		label.Render("Timestamp"),
		"  "+value.Render(e.Timestamp),
	)
	if !r.Time.IsZero() {
		lines = append(lines, "  "+label.Render(r.When))
	}
	lines = append(lines, "")
	lines = append(lines, wrap(r.Message, layout.DrawerContentWidth())...)

	return splitpanel.Panel{Title: "EVENT", Lines: lines}
}

// hostOf trims the scheme for the narrow sidebar.
func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host + u.Path
}

// wrap breaks text on spaces to fit width cells.
func wrap(text string, width int) []string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return []string{text}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
