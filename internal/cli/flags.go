package cli

import "github.com/footprint-tools/hookwatch/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	urlFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--url"},
		ValueHint:   "<base>",
		Description: "Backend base URL for this command (overrides api_url)",
		Scope:       dispatchers.FlagScopeLocal,
	}

	jsonFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--json"},
		Description: "Output as JSON",
		Scope:       dispatchers.FlagScopeLocal,
	}

	yamlFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--yaml"},
		Description: "Output as YAML",
		Scope:       dispatchers.FlagScopeLocal,
	}

	WatchFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--interval"},
			ValueHint:   "<dur>",
			Description: "Time between polls, e.g. 15s or 1m (overrides poll_interval)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		urlFlag,
		{
			Names:       []string{"--plain"},
			Description: "Print a text block per poll instead of the interactive view",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	EventsFlags = []dispatchers.FlagDescriptor{
		jsonFlag,
		yamlFlag,
		{
			Names:       []string{"--oneline"},
			Description: "Show one tab-separated event per line",
			Scope:       dispatchers.FlagScopeLocal,
		},
		urlFlag,
	}

	HealthFlags = []dispatchers.FlagDescriptor{
		jsonFlag,
		yamlFlag,
		urlFlag,
	}

	ConfigListFlags = []dispatchers.FlagDescriptor{
		jsonFlag,
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	VersionFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--short"},
			Description: "Print only the version number",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	LogsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--limit"},
			ValueHint:   "<n>",
			Description: "Number of lines to show (default 50)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--level"},
			ValueHint:   "<level>",
			Description: "Only show lines of this level (debug, info, warn, error)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		jsonFlag,
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script instead of install instructions",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
