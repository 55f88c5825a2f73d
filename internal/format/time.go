package format

import (
	"strings"
	"time"

	"github.com/footprint-tools/hookwatch/internal/config"
)

const (
	defaultDisplayDate = "Jan 02"
	defaultDisplayTime = "24h"
)

// Layout holds the Go time layouts derived from display_date and display_time.
type Layout struct {
	Date      string
	ClockFull string
}

// NewLayout builds a Layout from a config getter. Missing or empty
// values use "Jan 02" and 24h.
func NewLayout(get func(key string) (string, bool)) Layout {
	displayDate, _ := get("display_date")
	if strings.TrimSpace(displayDate) == "" {
		displayDate = defaultDisplayDate
	}
	displayTime, _ := get("display_time")
	if strings.TrimSpace(displayTime) == "" {
		displayTime = defaultDisplayTime
	}

	l := Layout{
		Date:      dateLayout(displayDate),
		ClockFull: "15:04:05",
	}
	if displayTime == "12h" {
		l.ClockFull = "3:04:05 PM"
	}
	return l
}

// Current reads the layout from the user's config.
func Current() Layout {
	return NewLayout(config.Get)
}

// Full example: "23/01/2024 15:04:05".
func (l Layout) Full(t time.Time) string {
	return t.Format(l.Date) + " " + t.Format(l.ClockFull)
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	default:
		// custom Go layout, e.g. "Jan 02"
		return displayDate
	}
}
