package logs

import (
	"regexp"
	"time"
)

// LogLine is one line of hw.log.
type LogLine struct {
	Raw        string
	Timestamp  string
	Level      string
	Message    string
	ParsedTime time.Time
}

// logEntryRegex matches lines like: [2026-01-29 10:30:45] WARN: poll: fetch events: ...
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

var timestampRegex = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)

const timestampLayout = "2006-01-02 15:04:05"

func parseLine(raw string) LogLine {
	line := LogLine{Raw: raw, Message: raw}

	if m := logEntryRegex.FindStringSubmatch(raw); m != nil {
		line.Timestamp, line.Level, line.Message = m[1], m[2], m[3]
	} else if m := timestampRegex.FindStringSubmatch(raw); m != nil {
		line.Timestamp, line.Message = m[1], m[2]
	}

	if line.Timestamp != "" {
		if t, err := time.ParseInLocation(timestampLayout, line.Timestamp, time.Local); err == nil {
			line.ParsedTime = t
		}
	}
	return line
}
