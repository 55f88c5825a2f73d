package completions

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/usage"
	"github.com/stretchr/testify/require"
)

func testTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{Name: "hw", Summary: "test"})
	dispatchers.Command(dispatchers.CommandSpec{Name: "watch", Parent: root, Summary: "Show the live event timeline"})
	return root
}

func testDeps(shell string, out *bytes.Buffer) Deps {
	return Deps{
		Tree:    testTree,
		Getenv:  func(string) string { return shell },
		HomeDir: func() (string, error) { return "/home/u", nil },
		Stdout:  out,
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(out, format, a...)
		},
		Println: func(a ...any) (int, error) {
			return fmt.Fprintln(out, a...)
		},
	}
}

func TestCompletions_Script(t *testing.T) {
	var out bytes.Buffer

	err := completionsCmd([]string{"bash"}, dispatchers.NewParsedFlags([]string{"--script"}), testDeps("", &out))

	require.NoError(t, err)
	require.Contains(t, out.String(), "complete -F _hw_completions hw")
	require.Contains(t, out.String(), "watch")
}

func TestCompletions_ShellFromEnv(t *testing.T) {
	var out bytes.Buffer

	err := completionsCmd(nil, dispatchers.NewParsedFlags([]string{"--script"}), testDeps("/bin/zsh", &out))

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "#compdef hw"))
}

func TestCompletions_Instructions(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{shell: "bash", want: []string{"1. Add to ~/.bashrc:", `eval "$(hw completions bash --script)"`}},
		{shell: "fish", want: []string{
			"1. Write to the auto-load directory:",
			"hw completions fish --script > /home/u/.config/fish/completions/hw.fish",
			"2. Add to ~/.config/fish/config.fish:",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var out bytes.Buffer

			err := completionsCmd([]string{tt.shell}, dispatchers.NewParsedFlags(nil), testDeps("", &out))

			require.NoError(t, err)
			for _, w := range tt.want {
				require.Contains(t, out.String(), w)
			}
		})
	}
}

func TestCompletions_Errors(t *testing.T) {
	var out bytes.Buffer

	err := completionsCmd(nil, dispatchers.NewParsedFlags(nil), testDeps("", &out))
	require.ErrorContains(t, err, "could not detect shell")

	err = completionsCmd([]string{"tcsh"}, dispatchers.NewParsedFlags(nil), testDeps("", &out))
	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidValue, ue.Kind)

	deps := testDeps("", &out)
	deps.Tree = func() *dispatchers.DispatchNode { return nil }
	err = completionsCmd([]string{"fish"}, dispatchers.NewParsedFlags([]string{"--script"}), deps)
	require.ErrorContains(t, err, "not registered")
}
