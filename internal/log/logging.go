package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/marquee/internal/config"
)

// redactedKeys are attribute keys whose values never reach the log file
var redactedKeys = map[string]bool{
	"token":         true,
	"password":      true,
	"authorization": true,
}

// Logger is the file-backed logger plus the file it writes to
type Logger struct {
	*slog.Logger
	file *os.File
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// SetupLogger opens the configured log file and returns a JSON logger
// tagged with the app version. The terminal belongs to the TUI, so
// nothing is written to stdout.
func SetupLogger(cfg *config.LoggingConfig, version string) (*Logger, error) {
	path, err := expandHome(cfg.File)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		Logger: newLogger(file, ParseLevel(cfg.Level)).With("app", "marquee", "version", version),
		file:   file,
	}, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redact,
	}))
}

// redact blanks credentials logged by mistake, at any group depth
func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] && a.Value.String() != "" {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ParseLevel converts a config level to slog.Level. It accepts slog's own
// spellings ("debug", "WARN+2") plus "warning"; anything else is INFO.
func ParseLevel(level string) slog.Level {
	level = strings.TrimSpace(level)
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// NullLogger returns a logger that discards all output
func NullLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}
