package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return tty }
	t.Cleanup(func() {
		isTerminal = orig
		resetPager()
	})
}

func configWith(pager string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if key == "pager" && pager != "" {
			return pager, true
		}
		return "less -FRSX", true
	}
}

func TestPagerCommand(t *testing.T) {
	tests := []struct {
		name     string
		tty      bool
		disabled bool
		override string
		config   string
		env      string
		want     []string
	}{
		{name: "not a terminal", tty: false, want: nil},
		{name: "disabled", tty: true, disabled: true, want: nil},
		{name: "default", tty: true, want: []string{"less", "-FRSX"}},
		{name: "env pager", tty: true, env: "more", want: []string{"more"}},
		{name: "config beats env", tty: true, config: "less -R", env: "more", want: []string{"less", "-R"}},
		{name: "flag beats config", tty: true, override: "bat -p", config: "less -R", want: []string{"bat", "-p"}},
		{name: "cat bypasses", tty: true, override: "cat", want: nil},
		{name: "config cat bypasses", tty: true, config: "cat", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTerminal(t, tt.tty)
			t.Setenv("PAGER", tt.env)
			if tt.disabled {
				DisablePager()
			}
			if tt.override != "" {
				SetPager(tt.override)
			}

			require.Equal(t, tt.want, PagerCommand(configWith(tt.config)))
		})
	}
}

func TestPager_WritesDirectlyWithoutTerminal(t *testing.T) {
	withTerminal(t, false)

	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })

	Pager("hello\n")
	require.Equal(t, "hello\n", buf.String())
}
