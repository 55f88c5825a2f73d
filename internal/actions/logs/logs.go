package logs

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/footprint-tools/hookwatch/internal/ui/style"
	"github.com/footprint-tools/hookwatch/internal/usage"
)

const defaultLogLimit = 50

// View shows the last N lines of the log file.
func View(args []string, flags *dispatchers.ParsedFlags) error {
	return view(args, flags, DefaultDeps())
}

func view(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	jsonOutput := flags.Has("--json")
	logPath := deps.LogFilePath()

	level := strings.ToUpper(flags.String("--level", ""))
	switch level {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return usage.InvalidValue("--level", level, "want debug, info, warn or error")
	}

	info, err := deps.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	var lines []LogLine
	for _, raw := range strings.Split(strings.TrimSuffix(string(content), "\n"), "\n") {
		if raw == "" {
			continue
		}
		line := parseLine(raw)
		if level != "" && line.Level != level {
			continue
		}
		lines = append(lines, line)
	}

	limit := flags.Int("--limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	if jsonOutput {
		return viewJSON(lines, deps)
	}

	for _, line := range lines {
		_, _ = deps.Println(colorizeLogLine(line))
	}
	return nil
}

func viewJSON(lines []LogLine, deps Deps) error {
	type logEntry struct {
		Timestamp string `json:"timestamp,omitempty"`
		Level     string `json:"level,omitempty"`
		Message   string `json:"message"`
		Raw       string `json:"raw,omitempty"`
	}

	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		entry := logEntry{Timestamp: line.Timestamp, Level: line.Level, Message: line.Message}
		if line.Level == "" {
			entry.Raw = line.Raw
		}
		entries = append(entries, entry)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Tail follows the log file until interrupted.
func Tail(args []string, flags *dispatchers.ParsedFlags) error {
	return tail(args, flags, DefaultDeps())
}

func tail(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(style.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println("")

	ctx, cancel := deps.Context()
	defer cancel()

	interval := deps.TailInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	reader := bufio.NewReader(file)
	var partial string
	for {
		chunk, err := reader.ReadString('\n')
		partial += chunk
		if err == nil {
			_, _ = deps.Println(colorizeLogLine(parseLine(strings.TrimSuffix(partial, "\n"))))
			partial = ""
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Clear empties the log file.
func Clear(args []string, flags *dispatchers.ParsedFlags) error {
	return clear(args, flags, DefaultDeps())
}

func clear(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

func colorizeLogLine(line LogLine) string {
	switch line.Level {
	case "ERROR":
		return style.Error(line.Raw)
	case "WARN":
		return style.Warning(line.Raw)
	case "INFO":
		return style.Info(line.Raw)
	case "DEBUG":
		return style.Muted(line.Raw)
	default:
		return line.Raw
	}
}
