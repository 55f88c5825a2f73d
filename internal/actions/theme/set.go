package theme

import (
	"fmt"
	"slices"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
	"github.com/footprint-tools/hookwatch/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("name")
	}

	themeName := args[0]

	_, explicit := deps.Themes[themeName]
	if !explicit && !slices.Contains(deps.BaseNames, themeName) {
		_, _ = deps.Printf("%s unknown theme: %s\n", style.Error("error:"), themeName)
		_, _ = deps.Println("")
		_, _ = deps.Println("available themes:")
		for _, name := range deps.BaseNames {
			_, _ = deps.Printf("  %s\n", name)
		}
		for _, name := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", name)
		}
		return fmt.Errorf("unknown theme: %s", themeName)
	}

	write := func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = deps.Set(lines, "theme", themeName)
		return deps.WriteLines(lines)
	}
	if deps.WithLock != nil {
		if err := deps.WithLock(write); err != nil {
			return err
		}
	} else if err := write(); err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(themeName))
	return nil
}
