package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

// Panel is the content of one column. Lines are already scrolled to the
// visible window; ScrollPos and TotalItems only drive the scrollbar.
type Panel struct {
	Title      string
	Lines      []string
	ScrollPos  int
	TotalItems int
}

// Config holds layout configuration
type Config struct {
	SidebarWidthPercent float64 // e.g., 0.25 for 25%
	SidebarMinWidth     int     // Minimum sidebar width
	SidebarMaxWidth     int     // Maximum sidebar width
	HasDrawer           bool    // Whether drawer overlay is supported
	DrawerWidthPercent  float64 // Width of drawer when open
}

// Layout holds computed dimensions and renders the split panel
type Layout struct {
	Width        int
	Height       int
	SidebarWidth int
	ContentWidth int
	DrawerWidth  int
	FocusSidebar bool
	DrawerOpen   bool
	Colors       style.ColorConfig
	config       Config
}

// NewLayout creates a new layout with calculated widths
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	// Calculate sidebar width
	sidebarWidth := int(float64(width) * cfg.SidebarWidthPercent)
	sidebarWidth = max(sidebarWidth, cfg.SidebarMinWidth)
	sidebarWidth = min(sidebarWidth, cfg.SidebarMaxWidth)

	// Content takes the rest
	contentWidth := width - sidebarWidth

	return &Layout{
		Width:        width,
		SidebarWidth: sidebarWidth,
		ContentWidth: contentWidth,
		Colors:       colors,
		FocusSidebar: true,
		config:       cfg,
	}
}

// SetFocus sets which panel is focused
func (l *Layout) SetFocus(focusSidebar bool) {
	l.FocusSidebar = focusSidebar
}

// SetDrawerOpen sets drawer state and recalculates widths
func (l *Layout) SetDrawerOpen(open bool) {
	l.DrawerOpen = open

	if open && l.config.HasDrawer {
		l.DrawerWidth = int(float64(l.Width) * l.config.DrawerWidthPercent)
		l.ContentWidth = l.Width - l.SidebarWidth - l.DrawerWidth
	} else {
		l.DrawerWidth = 0
		l.ContentWidth = l.Width - l.SidebarWidth
	}
}

// Render renders the split panel
func (l *Layout) Render(sidebar, content Panel, height int) string {
	return l.RenderWithDrawer(sidebar, content, nil, height)
}

// RenderWithDrawer renders the split panel with optional drawer
func (l *Layout) RenderWithDrawer(sidebar, content Panel, drawer *Panel, height int) string {
	l.Height = height
	colors := l.Colors
	uiActiveColor := lipgloss.Color(colors.UIActive)
	uiDimColor := lipgloss.Color(colors.UIDim)

	// Build each panel as simple bordered box
	sidebarStr := l.buildPanel(sidebar, l.SidebarWidth, height, l.FocusSidebar, uiActiveColor, uiDimColor)

	contentFocused := !l.FocusSidebar && !l.DrawerOpen
	contentStr := l.buildPanel(content, l.ContentWidth, height, contentFocused, uiActiveColor, uiDimColor)

	// Join panels directly
	if drawer != nil && l.DrawerOpen && l.DrawerWidth > 0 {
		drawerStr := l.buildPanel(*drawer, l.DrawerWidth, height, true, uiActiveColor, uiDimColor)
		return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStr, contentStr, drawerStr)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStr, contentStr)
}

// buildPanel creates a single panel with border and scrollbar
func (l *Layout) buildPanel(panel Panel, width, height int, focused bool, activeColor, dimColor lipgloss.Color) string {
	// Content width = panel width - border(2) - padding(2) - scrollbar(2)
	contentWidth := max(width-6, 1)

	// Visible height = panel height - border(2)
	visibleHeight := max(height-2, 1)

	lines := append([]string(nil), panel.Lines...)
	if panel.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(borderFor(focused, activeColor, dimColor)).Render(panel.Title)
		lines = append([]string{title}, lines...)
	}
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	bar := scrollbar(visibleHeight, totalItems, panel.ScrollPos, borderFor(focused, activeColor, dimColor), dimColor)

	// Combine lines with scrollbar
	var result []string
	for i, line := range lines {
		// Truncate or pad line to content width
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentWidth {
			// Truncate with ellipsis
			line = truncateString(line, contentWidth)
		} else if lineWidth < contentWidth {
			line = line + strings.Repeat(" ", contentWidth-lineWidth)
		}

		scrollChar := " "
		if i < len(bar) {
			scrollChar = bar[i]
		}
		result = append(result, line+" "+scrollChar)
	}

	content := strings.Join(result, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderFor(focused, activeColor, dimColor)).
		Padding(0, 1).
		Render(content)
}

func borderFor(focused bool, active, dim lipgloss.Color) lipgloss.Color {
	if focused {
		return active
	}
	return dim
}

const (
	thumbChar = "\u2588"
	trackChar = "\u2502"
)

// scrollbar returns one cell per visible line, blank when every row fits.
// The thumb covers the share of rows in view and sits where the window
// starts.
func scrollbar(height, total, offset int, thumb, track lipgloss.Color) []string {
	cells := make([]string, height)
	if total <= height {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	size := min(max(height*height/total, 1), max(height-2, 1))
	span := height - size
	pos := min(max(offset, 0)*span/(total-height), span)

	thumbCell := lipgloss.NewStyle().Foreground(thumb).Render(thumbChar)
	trackCell := lipgloss.NewStyle().Foreground(track).Render(trackChar)
	for i := range cells {
		if i >= pos && i < pos+size {
			cells[i] = thumbCell
		} else {
			cells[i] = trackCell
		}
	}
	return cells
}

// Window returns the first row to show when a list of total rows is
// viewed height rows at a time. offset is the previous first row; it only
// moves when cursor would leave the window.
func Window(offset, cursor, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	return max(min(offset, total-height), 0)
}

// truncateString cuts s to maxWidth cells, keeping ANSI sequences intact.
func truncateString(s string, maxWidth int) string {
	return ansi.Truncate(s, maxWidth, "...")
}

// SidebarContentWidth returns usable width for sidebar content
func (l *Layout) SidebarContentWidth() int {
	return l.SidebarWidth - 6 // border(2) + padding(2) + scrollbar(2)
}

// MainContentWidth returns usable width for main content
func (l *Layout) MainContentWidth() int {
	return l.ContentWidth - 6
}

// DrawerContentWidth returns usable width for drawer content
func (l *Layout) DrawerContentWidth() int {
	if l.DrawerWidth == 0 {
		return 0
	}
	return l.DrawerWidth - 6
}

// VisibleHeight returns the number of content lines a panel of the given
// height shows, accounting for the border and an optional title line.
func VisibleHeight(height int, titled bool) int {
	h := height - 2
	if titled {
		h--
	}
	return max(h, 1)
}
