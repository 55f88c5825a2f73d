// Package ui holds terminal output helpers shared by commands.
//
// The pager runs whatever command the user configured (--pager, the pager
// config key or $PAGER), the same way git and man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/footprint-tools/hookwatch/internal/config"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"golang.org/x/term"
)

var (
	pagerDisabled bool
	pagerOverride string
	pagerMu       sync.RWMutex

	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	stdout     io.Writer = os.Stdout
)

// DisablePager disables the pager globally (--no-pager).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager for this invocation (--pager=<cmd>).
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

func resetPager() {
	pagerMu.Lock()
	pagerDisabled = false
	pagerOverride = ""
	pagerMu.Unlock()
}

// PagerCommand resolves the pager to use. An empty result means write
// directly to stdout.
//
// Precedence:
//  1. --no-pager, or stdout is not a TTY
//  2. --pager=<cmd>
//  3. pager config key (or HW_PAGER), when changed from the default
//  4. $PAGER
//  5. less -FRSX
//
// "cat" at any level bypasses the pager.
func PagerCommand(get func(string) (string, bool)) []string {
	pagerMu.RLock()
	disabled, override := pagerDisabled, pagerOverride
	pagerMu.RUnlock()

	if disabled || !isTerminal() {
		return nil
	}

	def, _ := domain.GetDefaultValue("pager")
	cmd := def
	switch configured, _ := get("pager"); {
	case override != "":
		cmd = override
	case configured != "" && configured != def:
		cmd = configured
	case os.Getenv("PAGER") != "":
		cmd = os.Getenv("PAGER")
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return nil
	}
	return parts
}

// Pager displays content through the resolved pager, falling back to
// plain output when the pager cannot run.
func Pager(content string) {
	parts := PagerCommand(config.Get)
	if parts == nil {
		_, _ = fmt.Fprint(stdout, content)
		return
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		_, _ = fmt.Fprint(stdout, content)
	}
}
