package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/footprint-tools/hookwatch/internal/actions"
	"github.com/footprint-tools/hookwatch/internal/app"
	"github.com/footprint-tools/hookwatch/internal/cli"
	"github.com/footprint-tools/hookwatch/internal/completions"
	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/usage"
	"golang.org/x/term"
)

// valueFlags accept their value as the next argument ("--url http://x").
var valueFlags = map[string]bool{
	"--interval": true,
	"--url":      true,
	"--limit":    true,
	"--level":    true,
	"--pager":    true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	rawFlags, commands := extractFlagsAndCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	opts := app.DefaultOptions()
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	opts.PagerDisabled = flags.Has("--no-pager")
	opts.PagerOverride = flags.String("--pager", "")

	a := app.New(opts)
	defer func() { _ = app.Close(a) }()

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		if err := actions.ShowVersion(nil, flags); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		return 0
	}

	root := cli.BuildTree()
	completions.RegisterCommandTree(root)

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		return report(stderr, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return report(stderr, err)
	}

	// bare `hw` prints help and still fails
	return res.ExitCode
}

func report(w io.Writer, err error) int {
	fmt.Fprintln(w, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// extractFlagsAndCommands splits args into flags and command tokens.
// "--flag value" becomes "--flag=value" for flags that take a value,
// and "-N" / "-n N" are shorthands for --limit=N.
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "" || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if n, ok := numericShorthand(a); ok {
			flags = append(flags, "--limit="+strconv.Itoa(n))
			continue
		}

		hasNext := i+1 < len(args) && !strings.HasPrefix(args[i+1], "-")

		switch {
		case a == "-n" && hasNext:
			flags = append(flags, "--limit="+args[i+1])
			i++
		case valueFlags[a] && hasNext:
			flags = append(flags, a+"="+args[i+1])
			i++
		default:
			flags = append(flags, a)
		}
	}

	return flags, commands
}

func numericShorthand(a string) (int, bool) {
	if len(a) < 2 || a[0] != '-' || a[1] == '-' {
		return 0, false
	}
	n, err := strconv.Atoi(a[1:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
