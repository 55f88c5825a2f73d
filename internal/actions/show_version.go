package actions

import "github.com/footprint-tools/hookwatch/internal/dispatchers"

func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	if flags.Has("--short") {
		_, _ = deps.Printf("%s\n", deps.Version())
		return nil
	}
	_, _ = deps.Printf("hw version %s (%s)\n", deps.Version(), deps.Platform())
	return nil
}
