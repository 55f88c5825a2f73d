package watch

import (
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/hookwatch/internal/format"
	"github.com/footprint-tools/hookwatch/internal/poll"
	"github.com/footprint-tools/hookwatch/internal/timeline"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
)

// runPlain writes one block per completed tick until the context from
// deps.Context ends, then stops the poller.
func runPlain(s session, deps Deps) error {
	ctx, cancel := deps.Context()
	defer cancel()

	poller := poll.NewPoller(s.source,
		poll.WithInterval(s.interval),
		poll.WithLogger(deps.Logger),
		poll.WithObserver(func(snap poll.Snapshot) {
			if snap.InFlight {
				return
			}
			_, _ = io.WriteString(deps.Stdout, renderPlain(snap, s.layout))
		}),
	)

	_, _ = fmt.Fprintf(deps.Stdout, "%s\n\n", style.Muted(fmt.Sprintf("Watching %s every %s (Ctrl+C to stop)", s.baseURL, s.interval)))

	poller.Start(ctx)
	<-ctx.Done()
	poller.Stop()
	return nil
}

// renderPlain renders a snapshot as a text block: the update time, then
// the error banner, the empty state or one line per event.
func renderPlain(snap poll.Snapshot, layout format.Layout) string {
	var b strings.Builder

	updated := "never"
	if !snap.LastUpdated.IsZero() {
		updated = snap.LastUpdated.Local().Format(layout.ClockFull)
	}
	b.WriteString(style.Header("Last updated: "+updated) + "\n")

	switch snap.Screen() {
	case poll.ScreenLoading:
		b.WriteString(style.Muted(poll.LoadingMessage) + "\n")
	case poll.ScreenError:
		b.WriteString(style.Error("! "+snap.Err) + "\n")
	case poll.ScreenEmpty:
		b.WriteString(poll.EmptyTitle + "\n")
		b.WriteString(style.Muted(poll.EmptyHint) + "\n")
	default:
		for _, r := range timeline.Rows(snap.Events, layout) {
			b.WriteString(r.Line() + "\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}
