package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "app.log")

	closer, err := Setup(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() { closer() })

	slog.Info("quiz generated", "questions", 10)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"quiz generated"`) {
		t.Errorf("log line missing message: %s", line)
	}
	if !strings.Contains(line, `"questions":10`) {
		t.Errorf("log line missing attribute: %s", line)
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	closer, err := Setup(path, slog.LevelWarn)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() { closer() })

	slog.Info("should be dropped")
	slog.Warn("should be kept")

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "should be dropped") {
		t.Error("info line written despite warn level")
	}
	if !strings.Contains(string(data), "should be kept") {
		t.Error("warn line missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
