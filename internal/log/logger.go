package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/footprint-tools/hookwatch/internal/domain"
	"github.com/sirupsen/logrus"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// lineFormatter renders entries as "[2006-01-02 15:04:05] LEVEL: message".
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	level := strings.ToUpper(e.Level.String())
	if e.Level == logrus.WarnLevel {
		level = "WARN"
	}
	line := fmt.Sprintf("[%s] %s: %s\n", e.Time.Format("2006-01-02 15:04:05"), level, e.Message)
	return []byte(line), nil
}

// Logger writes leveled lines to a file. Safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	base    *logrus.Logger
	enabled bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init sets up the global logger writing to logPath.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(logPath, minLevel)
		if err != nil {
			return
		}
		defaultLoggerMu.Lock()
		defaultLogger = l
		defaultLoggerMu.Unlock()
	})
	return err
}

// New creates a logger appending to logPath.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(logPath, 0600); err != nil {
				return nil, fmt.Errorf("chmod existing log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	base := logrus.New()
	base.SetOutput(file)
	base.SetFormatter(lineFormatter{})
	base.SetLevel(minLevel.logrus())

	return &Logger{
		file:    file,
		base:    base,
		enabled: true,
	}, nil
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
	return l.file.Close()
}

// SetEnabled turns logging on or off without closing the file.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	l.base.Logf(level.logrus(), format, args...)
}

// Debug writes a debug line.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info writes an informational line.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error writes an error line.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Writer returns an io.Writer that logs each write at the given level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Package-level helpers forwarding to the global logger.

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug writes a debug line to the global logger.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Info writes an informational line to the global logger.
func Info(format string, args ...any) {
	current().Info(format, args...)
}

// Warn writes a warning to the global logger.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// Error writes an error line to the global logger.
func Error(format string, args ...any) {
	current().Error(format, args...)
}

// Close closes the global logger.
func Close() error {
	return current().Close()
}

// GetLogger returns the global logger (nil if Init was never called).
func GetLogger() *Logger {
	return current()
}

// Default returns a domain.Logger that forwards to the global logger,
// whatever it is at call time.
func Default() domain.Logger {
	return globalLogger{}
}

type globalLogger struct{}

func (globalLogger) Debug(format string, args ...any) { Debug(format, args...) }
func (globalLogger) Info(format string, args ...any)  { Info(format, args...) }
func (globalLogger) Warn(format string, args ...any)  { Warn(format, args...) }
func (globalLogger) Error(format string, args ...any) { Error(format, args...) }
func (globalLogger) Close() error                     { return nil }

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
var _ domain.Logger = globalLogger{}
