package feed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/hookwatch/internal/app"
	"github.com/footprint-tools/hookwatch/internal/config"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/events"
	"github.com/footprint-tools/hookwatch/internal/format"
	"github.com/footprint-tools/hookwatch/internal/log"
	"github.com/footprint-tools/hookwatch/internal/ui"
)

// Backend is the part of events.Client the one-shot commands use.
type Backend interface {
	FetchEvents(ctx context.Context) ([]domain.Event, error)
	CheckHealth(ctx context.Context) (events.Health, error)
	BaseURL() string
}

type Deps struct {
	Settings func(urlOverride string) (events.Settings, error)
	Backend  func(events.Settings) Backend
	Layout   func() format.Layout
	Logger   domain.Logger
	Pager    func(string)
	Stdout   io.Writer
	Printf   func(string, ...any) (int, error)
	Println  func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Settings: func(urlOverride string) (events.Settings, error) {
			return events.LoadSettings(config.Get, urlOverride)
		},
		Backend: func(s events.Settings) Backend {
			return s.NewClient(events.WithUserAgent(app.UserAgent()), events.WithLogger(log.Default()))
		},
		Layout:  format.Current,
		Logger:  log.Default(),
		Pager:   ui.Pager,
		Stdout:  os.Stdout,
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}
