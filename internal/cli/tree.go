package cli

import (
	"github.com/footprint-tools/hookwatch/internal/actions"
	"github.com/footprint-tools/hookwatch/internal/actions/completions"
	configactions "github.com/footprint-tools/hookwatch/internal/actions/config"
	"github.com/footprint-tools/hookwatch/internal/actions/feed"
	"github.com/footprint-tools/hookwatch/internal/actions/logs"
	"github.com/footprint-tools/hookwatch/internal/actions/theme"
	"github.com/footprint-tools/hookwatch/internal/actions/watch"
	"github.com/footprint-tools/hookwatch/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "hw",
		Summary: "Watch GitHub webhook events from your terminal",
		Usage:   "hw <command> [flags]",
		Flags:   RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "watch",
		Parent:  root,
		Summary: "Show the live event timeline",
		Usage:   "hw watch [--interval=<dur>] [--url=<base>] [--plain]",
		Description: `Polls <base>/api/events right away and then every poll_interval
(15s by default), showing one row per event. A failed poll shows an
error banner until the next successful one.

Keys: q quit, r refresh, j/k move, enter detail, 1-4 filter by type,
c clear filter. When stdout is not a terminal, or with --plain, a text
block is printed after every poll instead.`,
		Flags:    WatchFlags,
		Action:   watch.Watch,
		Category: dispatchers.CategoryWatch,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "events",
		Parent:   root,
		Summary:  "Fetch the event list once",
		Usage:    "hw events [--json | --yaml] [--oneline] [--url=<base>]",
		Flags:    EventsFlags,
		Action:   feed.Events,
		Category: dispatchers.CategoryQuery,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "health",
		Parent:   root,
		Summary:  "Check that the backend is up",
		Usage:    "hw health [--json | --yaml] [--url=<base>]",
		Flags:    HealthFlags,
		Action:   feed.Health,
		Category: dispatchers.CategoryQuery,
	})

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "hw config <command>",
		Description: `Settings live in ~/.hwrc as key=value lines. Every key can be
overridden for one run with an HW_<KEY> environment variable, e.g.
HW_API_URL=http://localhost:5000 hw watch.`,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Print a config value",
		Usage:    "hw config get <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "hw config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "hw config unset <key> | --all",
		Flags:    ConfigUnsetFlags,
		Args:     OptionalConfigKeyArg,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List all config values",
		Usage:    "hw config list [--json]",
		Flags:    ConfigListFlags,
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})

	themeGroup := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "theme",
		Parent:  root,
		Summary: "Manage color themes",
		Usage:   "hw theme <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   themeGroup,
		Summary:  "List available themes",
		Usage:    "hw theme list",
		Action:   theme.List,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   themeGroup,
		Summary:  "Set the color theme",
		Usage:    "hw theme set <name>",
		Args:     ThemeNameArg,
		Action:   theme.Set,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show hw version",
		Usage:    "hw version [--short]",
		Flags:    VersionFlags,
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryInfo,
	})

	logsNode := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "logs",
		Parent:   root,
		Summary:  "Show recent log lines",
		Usage:    "hw logs [--limit=<n>] [--level=<level>] [--json]",
		Flags:    LogsFlags,
		Action:   logs.View,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "tail",
		Parent:   logsNode,
		Summary:  "Follow the log file",
		Usage:    "hw logs tail",
		Action:   logs.Tail,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   logsNode,
		Summary:  "Empty the log file",
		Usage:    "hw logs clear",
		Action:   logs.Clear,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Set up shell completions",
		Usage:    "hw completions [bash|zsh|fish] [--script]",
		Flags:    CompletionsFlags,
		Args:     ShellArg,
		Action:   completions.Completions,
		Category: dispatchers.CategoryInfo,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "help",
		Parent:   root,
		Summary:  "Show help for a command",
		Usage:    "hw help [command]",
		Category: dispatchers.CategoryInfo,
	})

	return root
}
