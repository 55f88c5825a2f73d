package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success     string
	Warning     string
	Error       string
	Info        string
	Muted       string
	Header      string
	UIActive    string // focused panel border
	UIDim       string // unfocused panel border
	Push        string
	PullRequest string
	Merge       string
	Other       string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"neon",
	"mono",
	"ocean",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"neon-dark", "neon-light",
	"mono-dark", "mono-light",
	"ocean-dark", "ocean-light",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success:     "10",
		Warning:     "11",
		Error:       "9",
		Info:        "14",
		Muted:       "245",
		Header:      "bold",
		UIActive:    "14",
		UIDim:       "240",
		Push:        "10", // bright green
		PullRequest: "12", // bright blue
		Merge:       "13", // bright magenta
		Other:       "245",
	},
	"default-light": {
		Success:     "28",
		Warning:     "130",
		Error:       "124",
		Info:        "27",
		Muted:       "243",
		Header:      "bold",
		UIActive:    "27",
		UIDim:       "250",
		Push:        "28",
		PullRequest: "27",
		Merge:       "90",
		Other:       "243",
	},

	// Neon: vivid saturated colors.
	"neon-dark": {
		Success:     "48",
		Warning:     "220",
		Error:       "197",
		Info:        "51",
		Muted:       "244",
		Header:      "bold",
		UIActive:    "201",
		UIDim:       "238",
		Push:        "46",
		PullRequest: "39",
		Merge:       "201",
		Other:       "226",
	},
	"neon-light": {
		Success:     "29",
		Warning:     "166",
		Error:       "161",
		Info:        "32",
		Muted:       "245",
		Header:      "bold",
		UIActive:    "127",
		UIDim:       "252",
		Push:        "28",
		PullRequest: "26",
		Merge:       "127",
		Other:       "166",
	},

	// Mono: grayscale with a single accent.
	"mono-dark": {
		Success:     "252",
		Warning:     "250",
		Error:       "15",
		Info:        "44",
		Muted:       "242",
		Header:      "bold",
		UIActive:    "44",
		UIDim:       "238",
		Push:        "255",
		PullRequest: "250",
		Merge:       "44",
		Other:       "244",
	},
	"mono-light": {
		Success:     "236",
		Warning:     "239",
		Error:       "232",
		Info:        "30",
		Muted:       "246",
		Header:      "bold",
		UIActive:    "30",
		UIDim:       "252",
		Push:        "234",
		PullRequest: "240",
		Merge:       "30",
		Other:       "246",
	},

	// Ocean: blues and teals.
	"ocean-dark": {
		Success:     "43",
		Warning:     "229",
		Error:       "210",
		Info:        "75",
		Muted:       "243",
		Header:      "bold",
		UIActive:    "75",
		UIDim:       "237",
		Push:        "43",
		PullRequest: "75",
		Merge:       "117",
		Other:       "247",
	},
	"ocean-light": {
		Success:     "30",
		Warning:     "136",
		Error:       "160",
		Info:        "25",
		Muted:       "244",
		Header:      "bold",
		UIActive:    "25",
		UIDim:       "251",
		Push:        "30",
		PullRequest: "25",
		Merge:       "24",
		Other:       "244",
	},
}

// colorConfigKeys maps config keys to their ColorConfig field.
var colorConfigKeys = map[string]func(*ColorConfig) *string{
	"color_success":      func(c *ColorConfig) *string { return &c.Success },
	"color_warning":      func(c *ColorConfig) *string { return &c.Warning },
	"color_error":        func(c *ColorConfig) *string { return &c.Error },
	"color_info":         func(c *ColorConfig) *string { return &c.Info },
	"color_muted":        func(c *ColorConfig) *string { return &c.Muted },
	"color_header":       func(c *ColorConfig) *string { return &c.Header },
	"color_push":         func(c *ColorConfig) *string { return &c.Push },
	"color_pull_request": func(c *ColorConfig) *string { return &c.PullRequest },
	"color_merge":        func(c *ColorConfig) *string { return &c.Merge },
	"color_other":        func(c *ColorConfig) *string { return &c.Other },
}

// IsDarkBackground reports whether the terminal has a dark background.
// termenv answers true when detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix pass through.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	return ResolveThemeNameFor(name, IsDarkBackground())
}

// ResolveThemeNameFor is ResolveThemeName with a known background.
func ResolveThemeNameFor(name string, dark bool) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if dark {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (HW_COLOR_*, HW_THEME)
// 2. Config value
// 3. Theme value
// 4. default theme for the detected background
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := lookup(cfg, "theme")
	if themeName == "" {
		themeName = "default"
	}

	theme, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		theme = Themes["default-dark"]
	}

	result := theme
	for key, field := range colorConfigKeys {
		if value := lookup(cfg, key); value != "" {
			*field(&result) = value
		}
	}
	return result
}

func lookup(cfg map[string]string, key string) string {
	if value := os.Getenv("HW_" + strings.ToUpper(key)); value != "" {
		return value
	}
	return cfg[key]
}

// IsValidTheme reports whether name is a base or explicit theme name.
func IsValidTheme(name string) bool {
	if _, ok := Themes[name]; ok {
		return true
	}
	for _, base := range BaseThemeNames {
		if base == name {
			return true
		}
	}
	return false
}
