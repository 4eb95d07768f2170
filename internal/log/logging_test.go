package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/marquee/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"WARN+2", slog.LevelWarn + 2},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "marquee.log")

	logger, err := SetupLogger(&config.LoggingConfig{File: path, Level: "info"}, "1.2.3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Debug("dropped")
	logger.Info("signed in", "username", "alice")
	if err := logger.Close(); err != nil {
		t.Fatalf("expected clean close, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected only the info record, got %d lines", len(lines))
	}

	var record map[string]any
	if err := json.Unmarshal(lines[0], &record); err != nil {
		t.Fatalf("expected JSON record, got %v", err)
	}
	if record["version"] != "1.2.3" || record["app"] != "marquee" || record["username"] != "alice" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestRedact(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelInfo)

	logger.Info("login", "username", "alice", "password", "hunter2",
		slog.Group("request", "Authorization", "Bearer abc"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON record, got %v", err)
	}
	if record["password"] != "[redacted]" {
		t.Errorf("expected password redacted, got %v", record["password"])
	}
	request, _ := record["request"].(map[string]any)
	if request["Authorization"] != "[redacted]" {
		t.Errorf("expected nested header redacted, got %v", request)
	}
	if record["username"] != "alice" {
		t.Errorf("expected username kept, got %v", record["username"])
	}
}

func TestNullLogger(t *testing.T) {
	logger := NullLogger()
	logger.Error("ignored")
	if err := logger.Close(); err != nil {
		t.Errorf("expected no-op close, got %v", err)
	}
}
