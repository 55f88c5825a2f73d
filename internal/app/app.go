package app

import (
	"github.com/footprint-tools/hookwatch/internal/config"
	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/log"
	"github.com/footprint-tools/hookwatch/internal/paths"
	"github.com/footprint-tools/hookwatch/internal/ui"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

// Options configures process-wide setup done once by main.
type Options struct {
	PagerDisabled bool
	PagerOverride string

	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions reads logging and style settings from the config.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	return Options{
		LogEnabled:   cfg["enable_log"] != "false",
		LogLevel:     log.ParseLevel(cfg["log_level"]),
		LogPath:      paths.LogFilePath(),
		StyleEnabled: true,
		StyleConfig:  cfg,
	}
}

// Application bundles the shared services handed to commands.
type Application struct {
	Config domain.ConfigProvider
	Logger domain.Logger
}

// New applies opts to the global pager, style and log state and returns
// the wired Application. A log file that cannot be opened degrades to
// a no-op logger.
func New(opts Options) *Application {
	if opts.PagerDisabled {
		ui.DisablePager()
	}
	if opts.PagerOverride != "" {
		ui.SetPager(opts.PagerOverride)
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled && opts.LogPath != "" {
		if err := log.Init(opts.LogPath, opts.LogLevel); err == nil {
			logger = log.Default()
		}
	}

	return &Application{
		Config: config.NewProvider(),
		Logger: logger,
	}
}

// Close closes the application logger and the global log file.
func Close(a *Application) error {
	if a != nil && a.Logger != nil {
		_ = a.Logger.Close()
	}
	return log.Close()
}
