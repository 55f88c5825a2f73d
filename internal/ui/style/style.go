// Package style provides semantic terminal styling using lipgloss.
//
// Styles are named by meaning (Success, Error, Push, Merge) rather than by
// look. When disabled, every helper returns its input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	// Built once in Init, only used when enabled.
	successStyle     lipgloss.Style
	warningStyle     lipgloss.Style
	errorStyle       lipgloss.Style
	infoStyle        lipgloss.Style
	headerStyle      lipgloss.Style
	mutedStyle       lipgloss.Style
	pushStyle        lipgloss.Style
	pullRequestStyle lipgloss.Style
	mergeStyle       lipgloss.Style
	otherStyle       lipgloss.Style
)

// Init sets the styling state from the --no-color flag and the config map
// (theme and color_* overrides). NO_COLOR or HW_NO_COLOR disable styling
// regardless of enable. Call once from main before any output.
func Init(enable bool, cfg map[string]string) {
	colors = ColorConfig{}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("HW_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

// initStyles creates the lipgloss styles from the given color configuration.
// Uses ANSI 256-color palette to support both basic and extended colors.
func initStyles(colors ColorConfig) {
	// Force lipgloss to use ANSI256 colors regardless of TTY detection.
	// This supports both basic ANSI colors (0-15) and extended 256 colors.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	pushStyle = makeStyle(colors.Push)
	pullRequestStyle = makeStyle(colors.PullRequest)
	mergeStyle = makeStyle(colors.Merge)
	otherStyle = makeStyle(colors.Other)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}

// Push, PullRequest, Merge and Other color text by event kind.

func Push(text string) string {
	if !enabled {
		return text
	}
	return pushStyle.Render(text)
}

func PullRequest(text string) string {
	if !enabled {
		return text
	}
	return pullRequestStyle.Render(text)
}

func Merge(text string) string {
	if !enabled {
		return text
	}
	return mergeStyle.Render(text)
}

func Other(text string) string {
	if !enabled {
		return text
	}
	return otherStyle.Render(text)
}

// Foreground returns a lipgloss style for a raw color value, or a plain
// style when styling is disabled. The TUI uses it for badges and borders.
func Foreground(value string) lipgloss.Style {
	if !enabled || value == "" {
		return lipgloss.NewStyle()
	}
	return makeStyle(value)
}
