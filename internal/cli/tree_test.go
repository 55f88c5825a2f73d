package cli

import (
	"testing"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/stretchr/testify/require"
)

func flagNames(flags []dispatchers.FlagDescriptor) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		for _, name := range flag.Names {
			names[name] = true
		}
	}
	return names
}

func TestBuildTree_ReturnsRoot(t *testing.T) {
	root := BuildTree()

	require.NotNil(t, root)
	require.Equal(t, "hw", root.Name)
	require.Nil(t, root.Action)
}

func TestBuildTree_HasExpectedTopLevelCommands(t *testing.T) {
	root := BuildTree()

	for _, cmd := range []string{"watch", "events", "health", "config", "theme", "version", "logs", "completions", "help"} {
		_, found := root.Children[cmd]
		require.True(t, found, "expected top-level command '%s' not found", cmd)
	}
	require.Len(t, root.Children, 9)
}

func TestBuildTree_GroupsHaveSubcommands(t *testing.T) {
	root := BuildTree()

	tests := []struct {
		group string
		subs  []string
	}{
		{group: "config", subs: []string{"get", "set", "unset", "list"}},
		{group: "theme", subs: []string{"list", "set"}},
		{group: "logs", subs: []string{"tail", "clear"}},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			node, found := root.Children[tt.group]
			require.True(t, found)
			require.Len(t, node.Children, len(tt.subs))
			for _, sub := range tt.subs {
				child, found := node.Children[sub]
				require.True(t, found, "expected %s subcommand '%s' not found", tt.group, sub)
				require.NotNil(t, child.Action, "%s %s should have an action", tt.group, sub)
				require.Equal(t, []string{"hw", tt.group, sub}, child.Path)
			}
		})
	}
}

func TestBuildTree_CommandsHaveActions(t *testing.T) {
	root := BuildTree()

	for _, name := range []string{"watch", "events", "health", "version", "logs", "completions"} {
		require.NotNil(t, root.Children[name].Action, "command '%s' should have an action", name)
	}

	require.Nil(t, root.Children["config"].Action)
	require.Nil(t, root.Children["theme"].Action)
	require.Nil(t, root.Children["help"].Action, "help is resolved by the dispatcher")
}

func TestBuildTree_RootHasFlags(t *testing.T) {
	names := flagNames(BuildTree().Flags)

	for _, flag := range []string{"--help", "-h", "--version", "-v", "--no-color", "--no-pager", "--pager"} {
		require.True(t, names[flag], "root should have %s flag", flag)
	}
}

func TestBuildTree_CommandFlags(t *testing.T) {
	root := BuildTree()

	tests := []struct {
		path  []string
		flags []string
	}{
		{path: []string{"watch"}, flags: []string{"--interval", "--url", "--plain"}},
		{path: []string{"events"}, flags: []string{"--json", "--yaml", "--oneline", "--url"}},
		{path: []string{"health"}, flags: []string{"--json", "--yaml", "--url"}},
		{path: []string{"logs"}, flags: []string{"--limit", "--level", "--json"}},
		{path: []string{"version"}, flags: []string{"--short"}},
		{path: []string{"completions"}, flags: []string{"--script"}},
		{path: []string{"config", "unset"}, flags: []string{"--all"}},
		{path: []string{"config", "list"}, flags: []string{"--json"}},
	}

	for _, tt := range tests {
		node := root
		for _, p := range tt.path {
			node = node.Children[p]
			require.NotNil(t, node, "missing node %v", tt.path)
		}
		names := flagNames(node.Flags)
		for _, flag := range tt.flags {
			require.True(t, names[flag], "%v should have %s", tt.path, flag)
		}
		for name := range names {
			require.Contains(t, tt.flags, name, "%v has unexpected flag %s", tt.path, name)
		}
	}
}

func TestBuildTree_Categories(t *testing.T) {
	root := BuildTree()

	require.Equal(t, dispatchers.CategoryWatch, root.Children["watch"].Category)
	require.Equal(t, dispatchers.CategoryQuery, root.Children["events"].Category)
	require.Equal(t, dispatchers.CategoryQuery, root.Children["health"].Category)
	require.Equal(t, dispatchers.CategoryInfo, root.Children["version"].Category)
	require.Equal(t, dispatchers.CategoryConfig, root.Children["config"].Children["set"].Category)
	require.Equal(t, dispatchers.CategoryTheme, root.Children["theme"].Children["set"].Category)
}

func TestBuildTree_CommandsHaveUsageAndSummary(t *testing.T) {
	root := BuildTree()

	require.NotEmpty(t, root.Usage)
	require.NotEmpty(t, root.Summary)

	for name, child := range root.Children {
		require.NotEmpty(t, child.Usage, "command '%s' should have usage", name)
		require.NotEmpty(t, child.Summary, "command '%s' should have summary", name)
	}
}

func TestBuildTree_RequiredArgs(t *testing.T) {
	root := BuildTree()
	config := root.Children["config"]

	require.Len(t, config.Children["set"].Args, 2)
	require.True(t, config.Children["get"].Args[0].Required)
	require.False(t, config.Children["unset"].Args[0].Required)
	require.True(t, root.Children["theme"].Children["set"].Args[0].Required)
}

func TestBuildTree_Dispatches(t *testing.T) {
	root := BuildTree()

	tests := []struct {
		name     string
		tokens   []string
		flags    []string
		wantPath []string
		wantArgs []string
	}{
		{name: "watch", tokens: []string{"watch"}, flags: []string{"--interval=5s"}, wantPath: []string{"hw", "watch"}},
		{name: "events json", tokens: []string{"events"}, flags: []string{"--json"}, wantPath: []string{"hw", "events"}},
		{name: "config set", tokens: []string{"config", "set", "theme", "neon"}, wantPath: []string{"hw", "config", "set"}, wantArgs: []string{"theme", "neon"}},
		{name: "logs tail", tokens: []string{"logs", "tail"}, wantPath: []string{"hw", "logs", "tail"}},
		{name: "help for events", tokens: []string{"help", "events"}, wantPath: []string{"hw", "events"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := dispatchers.Dispatch(root, tt.tokens, dispatchers.NewParsedFlags(tt.flags))
			require.NoError(t, err)
			require.Equal(t, tt.wantPath, res.Node.Path)
			require.NotNil(t, res.Execute)
			if tt.wantArgs != nil {
				require.Equal(t, tt.wantArgs, res.Args)
			}
		})
	}
}
