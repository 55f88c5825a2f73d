// Package watch implements `hw watch`: a Poller feeding either the
// interactive timeline or a plain line stream.
package watch

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/format"
	"github.com/footprint-tools/hookwatch/internal/poll"
	"github.com/footprint-tools/hookwatch/internal/usage"
)

// Watch polls the backend until the user quits.
func Watch(args []string, flags *dispatchers.ParsedFlags) error {
	return watch(args, flags, DefaultDeps())
}

// session is what both surfaces need to run.
type session struct {
	source   domain.EventSource
	baseURL  string
	interval time.Duration
	layout   format.Layout
}

func watch(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	settings, err := deps.Settings(flags.String("--url", ""))
	if err != nil {
		return usage.InvalidBackendURL(err)
	}

	interval := settings.PollInterval
	if d, ok, err := flags.Duration("--interval"); ok {
		if err != nil {
			return usage.InvalidValue("--interval", flags.String("--interval", ""), err.Error())
		}
		if d <= 0 {
			return usage.InvalidValue("--interval", flags.String("--interval", ""), "must be positive")
		}
		interval = d
	}

	s := session{
		source:   deps.Source(settings),
		baseURL:  settings.BaseURL,
		interval: interval,
		layout:   deps.Layout(),
	}

	deps.Logger.Info("watch: polling %s every %s", s.baseURL, s.interval)

	if flags.Has("--plain") || !deps.IsTerminal() {
		return runPlain(s, deps)
	}
	return runTUI(s, deps)
}

func runTUI(s session, deps Deps) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var p *tea.Program
	poller := poll.NewPoller(s.source,
		poll.WithInterval(s.interval),
		poll.WithLogger(deps.Logger),
		poll.WithObserver(func(snap poll.Snapshot) { p.Send(snapshotMsg(snap)) }),
	)

	m := newModel(s)
	m.refresh = poller.Refresh
	m.quit = cancel

	p = tea.NewProgram(m, tea.WithAltScreen())

	poller.Start(ctx)
	defer poller.Stop()

	_, err := p.Run()
	return err
}
