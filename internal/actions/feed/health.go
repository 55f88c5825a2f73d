package feed

import (
	"context"
	"sort"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
	"github.com/footprint-tools/hookwatch/internal/usage"
)

// Health reports whether the backend answers /api/health.
func Health(args []string, flags *dispatchers.ParsedFlags) error {
	return health(args, flags, DefaultDeps())
}

func health(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	out, err := parseOutput(flags)
	if err != nil {
		return err
	}

	settings, err := deps.Settings(flags.String("--url", ""))
	if err != nil {
		return usage.InvalidBackendURL(err)
	}
	backend := deps.Backend(settings)

	h, err := backend.CheckHealth(context.Background())
	if err != nil {
		deps.Logger.Warn("health: %s: %v", backend.BaseURL(), err)
		_, _ = deps.Printf("%s %s\n", style.Error("unreachable"), backend.BaseURL())
		return err
	}

	switch out {
	case outputJSON:
		return writeJSON(deps.Stdout, h.Raw)
	case outputYAML:
		return writeYAML(deps.Stdout, h.Raw)
	}

	status := h.Status
	if status == "" {
		status = "ok"
	}
	_, _ = deps.Printf("%s %s\n", style.Success(status), backend.BaseURL())

	keys := make([]string, 0, len(h.Fields))
	for k := range h.Fields {
		if k != "status" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = deps.Printf("  %s: %v\n", style.Muted(k), h.Fields[k])
	}
	return nil
}
