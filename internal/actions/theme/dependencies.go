package theme

import (
	"fmt"

	"github.com/footprint-tools/hookwatch/internal/config"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	WithLock   func(func() error) error
	Set        func([]string, string, string) ([]string, bool)
	Get        func(string) (string, bool)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	// Resolve maps a base name ("neon") to the variant for this terminal.
	Resolve    func(string) string
	BaseNames  []string
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		WithLock:   config.WithLock,
		Set:        config.Set,
		Get:        config.Get,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		Resolve:    style.ResolveThemeName,
		BaseNames:  style.BaseThemeNames,
		ThemeNames: style.ThemeNames,
		Themes:     style.Themes,
	}
}
