package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	active := deps.Resolve(current)

	_, _ = deps.Println("Available themes (* = active)")
	_, _ = deps.Println("")

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == active {
			marker = style.Success("* ")
		}
		_, _ = deps.Printf("%s%-14s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}

	_, _ = deps.Println("")
	_, _ = deps.Println("Base names pick the dark or light variant from the terminal background:")
	for _, name := range deps.BaseNames {
		_, _ = deps.Printf("  %s\n", name)
	}
	_, _ = deps.Println("")
	_, _ = deps.Println("Use 'hw theme set <name>' to change")

	return nil
}

// renderColorPreview returns colored samples of a theme: semantic colors,
// then one badge per event type.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if !style.Enabled() {
			return text
		}
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("PUSH ", cfg.Push) +
		colorize("PULL REQUEST ", cfg.PullRequest) +
		colorize("MERGE ", cfg.Merge) +
		colorize("OTHER", cfg.Other)
}
