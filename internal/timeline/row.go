package timeline

import (
	"time"

	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/footprint-tools/hookwatch/internal/format"
)

// Row is one formatted event.
type Row struct {
	Event   domain.Event
	Kind    domain.Kind
	Icon    string
	Label   string
	Message string
	When    string
	// Time is zero when the timestamp did not parse.
	Time time.Time
}

// NewRow formats e.
func NewRow(e domain.Event, layout format.Layout) Row {
	kind := e.Type.Kind()
	p := For(kind)

	r := Row{
		Event:   e,
		Kind:    kind,
		Icon:    p.Icon,
		Label:   Label(e.Type),
		Message: p.message(e),
		When:    e.Timestamp,
	}
	if t, err := ParseTimestamp(e.Timestamp); err == nil {
		r.Time = t
		r.When = layout.Full(t.Local())
	}
	return r
}

// Rows formats events in list order.
func Rows(events []domain.Event, layout format.Layout) []Row {
	rows := make([]Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, NewRow(e, layout))
	}
	return rows
}

// Line renders the row as "icon message [label] when", colored by kind.
func (r Row) Line() string {
	p := For(r.Kind)
	return p.Paint(r.Icon) + " " + r.Message + "  " + p.Paint("["+r.Label+"]") + "  " + r.When
}

// Counts tallies events per kind.
func Counts(events []domain.Event) map[domain.Kind]int {
	counts := make(map[domain.Kind]int, len(domain.Kinds))
	for _, e := range events {
		counts[e.Type.Kind()]++
	}
	return counts
}
