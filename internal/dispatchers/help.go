package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/hookwatch/internal/ui"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

// commandDisplayOrder pins ordering within a category. Unlisted commands
// follow alphabetically.
var commandDisplayOrder = map[string]int{
	"watch":        1,
	"events":       1,
	"health":       2,
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
	"theme list":   1,
	"theme set":    2,
	"version":      1,
	"logs":         2,
	"logs tail":    3,
	"logs clear":   4,
}

// formatUsage colors the command part of a usage line and mutes the rest.
func formatUsage(usage string) string {
	cmdEnd := strings.IndexAny(usage, "[<")
	if cmdEnd < 0 {
		return style.Info(usage)
	}
	return style.Info(strings.TrimSpace(usage[:cmdEnd])) + " " + style.Muted(usage[cmdEnd:])
}

func displayName(node *DispatchNode) string {
	return strings.Join(node.Path[1:], " ")
}

func sortForDisplay(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		a, b := displayName(nodes[i]), displayName(nodes[j])
		orderA, hasA := commandDisplayOrder[a]
		orderB, hasB := commandDisplayOrder[b]
		switch {
		case hasA && hasB && orderA != orderB:
			return orderA < orderB
		case hasA != hasB:
			return hasA
		default:
			return a < b
		}
	})
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
	}
	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

// HelpText renders the help page of node.
func HelpText(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer

	if node == root {
		fmt.Fprintf(&out, "%s - %s\n\n", root.Name, root.Summary)
		fmt.Fprintf(&out, "USAGE\n   %s\n\n", formatUsage(root.Usage))

		var leaves []*DispatchNode
		for _, child := range root.Children {
			collectLeafCommands(child, &leaves)
		}

		grouped := make(map[CommandCategory][]*DispatchNode)
		for _, cmd := range leaves {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}
			sortForDisplay(cmds)

			out.WriteString(cat.String() + "\n")
			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", displayName(cmd))), cmd.Summary)
			}
			out.WriteString("\n")
		}

		writeFlags(&out, "GLOBAL FLAGS", root.Flags)
		fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - " + node.Summary)
	}
	out.WriteString("\n\n")
	fmt.Fprintf(&out, "USAGE\n   %s\n\n", formatUsage(node.Usage))

	if node.Description != "" {
		out.WriteString(node.Description + "\n\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")
		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortForDisplay(children)
		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	writeFlags(&out, "FLAGS", node.Flags)
	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
	return out.String()
}

func writeFlags(out *bytes.Buffer, title string, flags []FlagDescriptor) {
	if len(flags) == 0 {
		return
	}
	out.WriteString(title + "\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name += "=" + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
	out.WriteString("\n")
}

// HelpAction shows the help page of node through the pager.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(_ []string, _ *ParsedFlags) error {
		ui.Pager(HelpText(node, root))
		return nil
	}
}
