package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogHandler_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newLogHandler(&buf, false, false))
	logger.Info("server starting", "addr", "0.0.0.0:8080")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug must be filtered):\n%s", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["msg"] != "server starting" || rec["addr"] != "0.0.0.0:8080" {
		t.Errorf("record: %v", rec)
	}
}

func TestNewLogHandler_Levels(t *testing.T) {
	tests := []struct {
		name    string
		dev     bool
		verbose bool
		debug   bool
	}{
		{"dev", true, false, false},
		{"dev verbose", true, true, true},
		{"prod", false, false, false},
		{"prod verbose", false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newLogHandler(&bytes.Buffer{}, tt.dev, tt.verbose)
			if got := h.Enabled(context.Background(), slog.LevelDebug); got != tt.debug {
				t.Errorf("debug enabled: got %v, want %v", got, tt.debug)
			}
			if !h.Enabled(context.Background(), slog.LevelInfo) {
				t.Error("info should always be enabled")
			}
		})
	}
}

func TestNewLogHandler_DevIsReadable(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newLogHandler(&buf, true, false)).Info("seed completed", "steps", 20)

	out := buf.String()
	if !strings.Contains(out, "seed completed") || !strings.Contains(out, "steps=20") {
		t.Errorf("dev output: %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Error("dev output should not be JSON")
	}
}
