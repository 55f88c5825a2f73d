package watch

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/footprint-tools/hookwatch/internal/app"
	"github.com/footprint-tools/hookwatch/internal/config"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/events"
	"github.com/footprint-tools/hookwatch/internal/format"
	"github.com/footprint-tools/hookwatch/internal/log"
	"golang.org/x/term"
)

type Deps struct {
	Settings   func(urlOverride string) (events.Settings, error)
	Source     func(events.Settings) domain.EventSource
	IsTerminal func() bool
	Layout     func() format.Layout
	Logger     domain.Logger
	Stdout     io.Writer
	// Context bounds the plain stream; the default one ends on SIGINT
	// or SIGTERM.
	Context func() (context.Context, context.CancelFunc)
}

func DefaultDeps() Deps {
	return Deps{
		Settings: func(urlOverride string) (events.Settings, error) {
			return events.LoadSettings(config.Get, urlOverride)
		},
		Source: func(s events.Settings) domain.EventSource {
			return s.NewClient(events.WithUserAgent(app.UserAgent()), events.WithLogger(log.Default()))
		},
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Layout: format.Current,
		Logger: log.Default(),
		Stdout: os.Stdout,
		Context: func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		},
	}
}
