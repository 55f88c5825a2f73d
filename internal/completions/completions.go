// Package completions generates bash, zsh and fish completion scripts
// from the dispatch tree.
package completions

import (
	"slices"
	"sort"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
)

// CommandInfo is one node of the dispatch tree, flattened.
type CommandInfo struct {
	Name        string
	Path        []string // from the root, e.g. ["hw", "config", "set"]
	Summary     string
	Subcommands []CommandInfo
	Flags       []FlagInfo
}

type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// Long returns the first --name of the flag without dashes, or "".
func (f FlagInfo) Long() string {
	for _, n := range f.Names {
		if len(n) > 2 && n[:2] == "--" {
			return n[2:]
		}
	}
	return ""
}

// Short returns the single-letter -x name of the flag without the dash, or "".
func (f FlagInfo) Short() string {
	for _, n := range f.Names {
		if len(n) == 2 && n[0] == '-' && n[1] != '-' {
			return n[1:]
		}
	}
	return ""
}

// ExtractCommands walks the tree depth first. Children are sorted by
// name so generated scripts are stable.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd := CommandInfo{
		Name:    node.Name,
		Path:    node.Path,
		Summary: node.Summary,
		Flags:   flagInfos(node.Flags),
	}
	for _, name := range names {
		child := node.Children[name]
		cmd.Subcommands = append(cmd.Subcommands, CommandInfo{Name: name, Path: child.Path, Summary: child.Summary})
	}
	*commands = append(*commands, cmd)

	for _, name := range names {
		extractNode(node.Children[name], commands)
	}
}

func flagInfos(flags []dispatchers.FlagDescriptor) []FlagInfo {
	var out []FlagInfo
	for _, f := range flags {
		out = append(out, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}
	return out
}

// FindCommand finds a command by its full path.
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if slices.Equal(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}
