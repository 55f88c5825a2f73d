package cli

import "github.com/footprint-tools/hookwatch/internal/dispatchers"

var (
	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	OptionalConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key (omit with --all)",
			Required:    false,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (e.g., neon, ocean-light)",
			Required:    true,
		},
	}

	ShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "bash, zsh or fish (default: $SHELL)",
			Required:    false,
		},
	}
)
