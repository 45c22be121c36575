package util

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level       string
		debugOn     bool
		warnOn      bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"garbage", false, true}, // falls back to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(tt.level, "text")
			if logger == nil {
				t.Fatal("NewLogger returned nil")
			}
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.debugOn {
				t.Errorf("Enabled(debug) = %v, want %v", got, tt.debugOn)
			}
			if got := logger.Enabled(context.Background(), slog.LevelWarn); got != tt.warnOn {
				t.Errorf("Enabled(warn) = %v, want %v", got, tt.warnOn)
			}
		})
	}
}

func TestNewLoggerFormats(t *testing.T) {
	for _, format := range []string{"text", "json", ""} {
		if NewLogger("info", format) == nil {
			t.Errorf("NewLogger(info, %q) returned nil", format)
		}
	}
}
