// Package feed implements the one-shot backend commands: a single fetch
// of the event list and a health probe.
package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/poll"
	"github.com/footprint-tools/hookwatch/internal/timeline"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
	"github.com/footprint-tools/hookwatch/internal/usage"
)

// Events prints the current event list once.
func Events(args []string, flags *dispatchers.ParsedFlags) error {
	return listEvents(args, flags, DefaultDeps())
}

func listEvents(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	out, err := parseOutput(flags)
	if err != nil {
		return err
	}

	settings, err := deps.Settings(flags.String("--url", ""))
	if err != nil {
		return usage.InvalidBackendURL(err)
	}
	backend := deps.Backend(settings)

	list, err := backend.FetchEvents(context.Background())
	if err != nil {
		deps.Logger.Warn("events: fetch %s: %v", backend.BaseURL(), err)
		_, _ = deps.Println(style.Error(poll.FailureMessage))
		return err
	}

	switch out {
	case outputJSON:
		return writeJSON(deps.Stdout, list)
	case outputYAML:
		return writeYAML(deps.Stdout, list)
	}

	rows := timeline.Rows(list, deps.Layout())

	if flags.Has("--oneline") {
		for _, r := range rows {
			_, _ = deps.Printf("%s\t%s\t%s\n", r.When, r.Event.Type, r.Message)
		}
		return nil
	}

	if len(rows) == 0 {
		_, _ = deps.Println(style.Header(poll.EmptyTitle))
		_, _ = deps.Println(style.Muted(poll.EmptyHint))
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", style.Header(fmt.Sprintf("%d events", len(rows))), style.Muted("from "+backend.BaseURL()))
	for _, r := range rows {
		b.WriteString(r.Line())
		b.WriteString("\n")
	}
	deps.Pager(b.String())
	return nil
}
