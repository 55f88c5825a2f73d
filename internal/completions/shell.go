package completions

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

var supported = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell accepts a shell name or a path such as /usr/bin/zsh.
func ParseShell(s string) (Shell, error) {
	name := Shell(strings.TrimSpace(filepath.Base(s)))
	for _, sh := range supported {
		if name == sh {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", s)
}

// Generate returns the completion script for shell.
func Generate(shell Shell, bin string, commands []CommandInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(bin, commands), nil
	case ShellZsh:
		return GenerateZsh(bin, commands), nil
	case ShellFish:
		return GenerateFish(bin, commands), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// SourceLine is the line to add to the shell rc file.
func SourceLine(shell Shell, bin string) string {
	if shell == ShellFish {
		return fmt.Sprintf("%s completions fish --script | source", bin)
	}
	return fmt.Sprintf(`eval "$(%s completions %s --script)"`, bin, shell)
}

func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoloadPath is where the shell picks up completion files on its own.
// Only fish has one that works without extra setup.
func AutoloadPath(shell Shell, home, bin string) string {
	if shell != ShellFish || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
}
