package logs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/footprint-tools/hookwatch/internal/dispatchers"
	"github.com/stretchr/testify/require"
)

const sampleLog = `[2026-01-15 10:30:45] INFO: watch: started against http://localhost:5000
[2026-01-15 10:30:46] DEBUG: GET http://localhost:5000/api/events -> 200 (id 1)
[2026-01-15 10:31:01] WARN: poll: fetch events: connection refused
not a log line
[2026-01-15 10:31:16] ERROR: config: lock timeout
`

type mockFileInfo struct {
	size int64
}

func (m *mockFileInfo) Name() string       { return "hw.log" }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return 0600 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return false }
func (m *mockFileInfo) Sys() any           { return nil }

func contentDeps(content string, printed *[]string) Deps {
	return Deps{
		LogFilePath: func() string { return "/tmp/hw.log" },
		Stat: func(string) (os.FileInfo, error) {
			return &mockFileInfo{size: int64(len(content))}, nil
		},
		ReadFile: func(string) ([]byte, error) { return []byte(content), nil },
		Println: func(a ...any) (int, error) {
			*printed = append(*printed, fmt.Sprint(a...))
			return 0, nil
		},
	}
}

func TestView(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  []string
	}{
		{
			name:  "all lines",
			flags: nil,
			want: []string{
				"[2026-01-15 10:30:45] INFO: watch: started against http://localhost:5000",
				"[2026-01-15 10:30:46] DEBUG: GET http://localhost:5000/api/events -> 200 (id 1)",
				"[2026-01-15 10:31:01] WARN: poll: fetch events: connection refused",
				"not a log line",
				"[2026-01-15 10:31:16] ERROR: config: lock timeout",
			},
		},
		{
			name:  "limit keeps the tail",
			flags: []string{"--limit=2"},
			want: []string{
				"not a log line",
				"[2026-01-15 10:31:16] ERROR: config: lock timeout",
			},
		},
		{
			name:  "level filter",
			flags: []string{"--level=warn"},
			want:  []string{"[2026-01-15 10:31:01] WARN: poll: fetch events: connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var printed []string
			err := view(nil, dispatchers.NewParsedFlags(tt.flags), contentDeps(sampleLog, &printed))
			require.NoError(t, err)
			require.Equal(t, tt.want, printed)
		})
	}
}

func TestView_InvalidLevel(t *testing.T) {
	var printed []string
	err := view(nil, dispatchers.NewParsedFlags([]string{"--level=loud"}), contentDeps(sampleLog, &printed))
	require.Error(t, err)
}

func TestView_NegativeLimitDefaultsTo50(t *testing.T) {
	content := strings.Repeat("[2026-01-15 10:30:45] INFO: line\n", 60)
	var printed []string

	err := view(nil, dispatchers.NewParsedFlags([]string{"--limit=-10"}), contentDeps(content, &printed))

	require.NoError(t, err)
	require.Len(t, printed, 50)
}

func TestView_JSON(t *testing.T) {
	var printed []string

	err := view(nil, dispatchers.NewParsedFlags([]string{"--json", "--limit=2"}), contentDeps(sampleLog, &printed))

	require.NoError(t, err)
	require.Len(t, printed, 1)
	require.Contains(t, printed[0], `"level": "ERROR"`)
	require.Contains(t, printed[0], `"message": "config: lock timeout"`)
	require.Contains(t, printed[0], `"raw": "not a log line"`)
}

func TestView_MissingAndEmpty(t *testing.T) {
	tests := []struct {
		name  string
		stat  func(string) (os.FileInfo, error)
		flags []string
		want  string
	}{
		{"missing", func(string) (os.FileInfo, error) { return nil, os.ErrNotExist }, nil, "No log file found"},
		{"missing json", func(string) (os.FileInfo, error) { return nil, os.ErrNotExist }, []string{"--json"}, "[]"},
		{"empty", func(string) (os.FileInfo, error) { return &mockFileInfo{}, nil }, nil, "Log file is empty"},
		{"empty json", func(string) (os.FileInfo, error) { return &mockFileInfo{}, nil }, []string{"--json"}, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var printed []string
			deps := contentDeps("", &printed)
			deps.Stat = tt.stat

			require.NoError(t, view(nil, dispatchers.NewParsedFlags(tt.flags), deps))
			require.Len(t, printed, 1)
			require.Contains(t, printed[0], tt.want)
		})
	}
}

func TestView_Errors(t *testing.T) {
	var printed []string

	deps := contentDeps(sampleLog, &printed)
	deps.Stat = func(string) (os.FileInfo, error) { return nil, errors.New("stat error") }
	require.ErrorContains(t, view(nil, nil, deps), "stat log file")

	deps = contentDeps(sampleLog, &printed)
	deps.ReadFile = func(string) ([]byte, error) { return nil, errors.New("read error") }
	require.ErrorContains(t, view(nil, nil, deps), "read log file")
}

func TestParseLine(t *testing.T) {
	line := parseLine("[2026-01-15 10:31:01] WARN: poll: fetch events: refused")
	require.Equal(t, "2026-01-15 10:31:01", line.Timestamp)
	require.Equal(t, "WARN", line.Level)
	require.Equal(t, "poll: fetch events: refused", line.Message)
	require.Equal(t, 31, line.ParsedTime.Minute())

	line = parseLine("[2026-01-15 10:31:01] plain message")
	require.Equal(t, "2026-01-15 10:31:01", line.Timestamp)
	require.Empty(t, line.Level)
	require.Equal(t, "plain message", line.Message)

	line = parseLine("short")
	require.Equal(t, "short", line.Raw)
	require.Empty(t, line.Timestamp)
	require.True(t, line.ParsedTime.IsZero())
}

func TestColorizeLogLine_NoLevel(t *testing.T) {
	require.Equal(t, "just a plain line", colorizeLogLine(parseLine("just a plain line")))
}

func TestClear(t *testing.T) {
	var writtenPath string
	written := []byte("x")
	var printed []string

	deps := contentDeps("", &printed)
	deps.WriteFile = func(path string, content []byte, _ os.FileMode) error {
		writtenPath = path
		written = content
		return nil
	}

	require.NoError(t, clear(nil, nil, deps))
	require.Equal(t, "/tmp/hw.log", writtenPath)
	require.Empty(t, written)
	require.Contains(t, printed[0], "cleared")

	deps.WriteFile = func(string, []byte, os.FileMode) error { return errors.New("write error") }
	require.ErrorContains(t, clear(nil, nil, deps), "clear log file")
}

func TestTail_FollowsAppendedLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "hw.log")
	require.NoError(t, os.WriteFile(logPath, []byte("[2026-01-15 10:00:00] INFO: before\n"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	printed := make(chan string, 16)
	deps := Deps{
		LogFilePath: func() string { return logPath },
		OpenFile:    os.OpenFile,
		Println: func(a ...any) (int, error) {
			printed <- fmt.Sprint(a...)
			return 0, nil
		},
		Context:      func() (context.Context, context.CancelFunc) { return ctx, cancel },
		TailInterval: 5 * time.Millisecond,
	}

	done := make(chan error, 1)
	go func() { done <- tail(nil, nil, deps) }()

	require.Contains(t, <-printed, "Following logs")
	require.Equal(t, "", <-printed)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.WriteString("[2026-01-15 10:00:01] WARN: after\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case got := <-printed:
		require.Equal(t, "[2026-01-15 10:00:01] WARN: after", got)
	case <-time.After(2 * time.Second):
		t.Fatal("appended line was not printed")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestTail_OpenFileError(t *testing.T) {
	deps := Deps{
		LogFilePath: func() string { return "/tmp/hw.log" },
		OpenFile: func(string, int, os.FileMode) (*os.File, error) {
			return nil, errors.New("open error")
		},
	}

	require.ErrorContains(t, tail(nil, nil, deps), "open log file")
}

func TestDefaultDeps(t *testing.T) {
	deps := DefaultDeps()

	require.NotNil(t, deps.Printf)
	require.NotNil(t, deps.Println)
	require.NotNil(t, deps.ReadFile)
	require.NotNil(t, deps.WriteFile)
	require.NotNil(t, deps.Stat)
	require.NotNil(t, deps.OpenFile)
	require.NotNil(t, deps.Context)
	require.NotEmpty(t, deps.LogFilePath())
}
