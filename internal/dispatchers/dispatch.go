package dispatchers

import (
	"strings"

	"github.com/footprint-tools/hookwatch/internal/usage"
)

const defaultSuggestionsCount = 3

// handleHelpCommand resolves `hw help [path...]` and `hw <path...> help`.
func handleHelpCommand(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, bool, error) {
	for i, tok := range tokens {
		if tok != "help" {
			continue
		}

		targetPath := tokens[:i]
		if len(tokens[i+1:]) > 0 {
			targetPath = tokens[i+1:]
		}

		if target := resolveNode(root, targetPath); target != nil {
			return Resolution{Node: target, Flags: flags, Execute: HelpAction(target, root)}, true, nil
		}

		suggestions := FindSimilarCommands(targetPath[len(targetPath)-1], root, defaultSuggestionsCount)
		return Resolution{}, true, usage.UnknownCommand(strings.Join(targetPath, " "), suggestions...)
	}
	return Resolution{}, false, nil
}

// Dispatch walks tokens down the tree and returns what to execute.
// Tokens past the deepest matching node are positional args.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	if res, handled, err := handleHelpCommand(root, tokens, flags); handled {
		return res, err
	}

	current := root
	pathLen := 0

	for i, tok := range tokens {
		child, ok := current.Children[tok]
		if !ok {
			if i == 0 && len(current.Children) > 0 {
				return Resolution{}, usage.UnknownCommand(tok, FindSimilarCommands(tok, current, defaultSuggestionsCount)...)
			}
			// inside a group, unknown tokens are typos, not args
			if current.Action == nil && len(current.Children) > 0 {
				cmdPath := strings.Join(append(append([]string(nil), current.Path[1:]...), tok), " ")
				return Resolution{}, usage.UnknownCommand(cmdPath, FindSimilarCommands(tok, current, defaultSuggestionsCount)...)
			}
			break
		}
		current = child
		pathLen++
	}

	args := tokens[pathLen:]

	if flags.Has("--help") || flags.Has("-h") {
		return Resolution{Node: current, Flags: flags, Execute: HelpAction(current, root)}, nil
	}

	if err := validateFlags(flags, validFlagsForNode(current, root)); err != nil {
		return Resolution{}, err
	}

	if current.Action == nil {
		exitCode := 0
		if current == root && len(tokens) == 0 {
			exitCode = 1
		}
		return Resolution{Node: current, Flags: flags, Execute: HelpAction(current, root), ExitCode: exitCode}, nil
	}

	if err := validateArgs(current.Args, args); err != nil {
		return Resolution{}, err
	}

	return Resolution{Node: current, Args: args, Flags: flags, Execute: current.Action}, nil
}

func validFlagsForNode(node *DispatchNode, root *DispatchNode) map[string]bool {
	valid := make(map[string]bool)
	for _, set := range [][]FlagDescriptor{root.Flags, node.Flags} {
		for _, f := range set {
			for _, name := range f.Names {
				valid[name] = true
			}
		}
	}
	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]bool) error {
	for _, f := range flags.Raw() {
		name, _, _ := strings.Cut(f, "=")
		if !valid[name] {
			return usage.InvalidFlag(f)
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	for i, a := range spec {
		if a.Required && i >= len(args) {
			return usage.MissingArgument(a.Name)
		}
	}
	if len(args) > len(spec) {
		return usage.UnexpectedArgument(args[len(spec)])
	}
	return nil
}

func resolveNode(root *DispatchNode, path []string) *DispatchNode {
	current := root
	for _, p := range path {
		child, ok := current.Children[p]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}
