package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/hookwatch/internal/completions"
	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/usage"
)

const binaryName = "hw"

type Deps struct {
	Tree    func() *dispatchers.DispatchNode
	Getenv  func(string) string
	HomeDir func() (string, error)
	Stdout  io.Writer
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Tree:    completions.CommandTree,
		Getenv:  os.Getenv,
		HomeDir: os.UserHomeDir,
		Stdout:  os.Stdout,
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}

// Completions prints the completion script with --script, and install
// instructions otherwise. The shell defaults to $SHELL.
func Completions(args []string, flags *dispatchers.ParsedFlags) error {
	return completionsCmd(args, flags, DefaultDeps())
}

func completionsCmd(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	name := deps.Getenv("SHELL")
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return fmt.Errorf("could not detect shell, specify one: %s completions <bash|zsh|fish>", binaryName)
	}

	shell, err := completions.ParseShell(name)
	if err != nil {
		return usage.InvalidValue("shell", name, "use bash, zsh, or fish")
	}

	if flags.Has("--script") {
		root := deps.Tree()
		if root == nil {
			return fmt.Errorf("command tree not registered")
		}
		script, err := completions.Generate(shell, binaryName, completions.ExtractCommands(root))
		if err != nil {
			return err
		}
		_, err = io.WriteString(deps.Stdout, script)
		return err
	}

	printInstructions(shell, deps)
	return nil
}

func printInstructions(shell completions.Shell, deps Deps) {
	home, _ := deps.HomeDir()

	_, _ = deps.Println("To enable completions, choose one of the following:")
	_, _ = deps.Println()

	option := 1
	if path := completions.AutoloadPath(shell, home, binaryName); path != "" {
		_, _ = deps.Printf("%d. Write to the auto-load directory:\n", option)
		_, _ = deps.Printf("   %s completions %s --script > %s\n", binaryName, shell, path)
		_, _ = deps.Println()
		option++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", option, completions.RcFile(shell))
	_, _ = deps.Printf("   %s\n", completions.SourceLine(shell, binaryName))
	_, _ = deps.Println()

	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}
