package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/hookwatch/internal/format"
)

// FormatError reports a timestamp no known layout accepts.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized timestamp %q", e.Value)
}

// Layouts carrying their own zone.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	time.RFC1123,
	time.RFC1123Z,
}

// Layouts without a zone are read as local time.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseTimestamp reads the backend timestamp formats: RFC 3339 with or
// without fraction, zone-less ISO 8601 (local time), date-only ISO 8601
// (UTC midnight) and the RFC 1123 form Flask emits for datetimes.
func ParseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, &FormatError{Value: value}
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Time{}, &FormatError{Value: value}
}

// FormatTimestamp renders value in local time with layout, or returns
// value unchanged when it cannot be parsed.
func FormatTimestamp(value string, layout format.Layout) string {
	t, err := ParseTimestamp(value)
	if err != nil {
		return value
	}
	return layout.Full(t.Local())
}
