// pattern: Functional Core

package logging

import (
	"strings"
	"testing"
	"time"
)

func TestLogEntry_String(t *testing.T) {
	tests := []struct {
		name     string
		entry    LogEntry
		contains []string
	}{
		{
			name: "basic entry",
			entry: LogEntry{
				Timestamp: time.Date(2025, 1, 27, 10, 30, 0, 0, time.UTC),
				Level:     "INFO",
				Scope:     "app",
				Message:   "client starting",
			},
			contains: []string{"10:30:00", "INFO", "[app]", "client starting"},
		},
		{
			name: "entry with fields",
			entry: LogEntry{
				Timestamp: time.Date(2025, 1, 27, 10, 30, 0, 0, time.UTC),
				Level:     "ERROR",
				Scope:     "config",
				Message:   "reload failed",
				Fields:    map[string]any{"error": "yaml: line 3"},
			},
			contains: []string{"ERROR", "[config]", "reload failed", "error=yaml: line 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("String() = %q, should contain %q", got, want)
				}
			}
		})
	}
}

func TestLogEntry_StatusLineSortsFields(t *testing.T) {
	entry := LogEntry{
		Scope:   "resize",
		Message: "layout resized",
		Fields:  map[string]any{"rows": 60, "cols": 115, "pass": 3},
	}
	want := "[resize] layout resized cols=115 pass=3 rows=60"
	if got := entry.StatusLine(); got != want {
		t.Errorf("StatusLine() = %q, want %q", got, want)
	}
}

func TestLogEntry_MatchesScope(t *testing.T) {
	tests := []struct {
		name   string
		scope  string
		prefix string
		want   bool
	}{
		{"empty prefix matches all", "resize", "", true},
		{"exact match", "resize", "resize", true},
		{"prefix match", "tui.keys", "tui", true},
		{"no match", "config", "resize", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := LogEntry{Scope: tt.scope}
			if got := entry.MatchesScope(tt.prefix); got != tt.want {
				t.Errorf("MatchesScope(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"DEBUG", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"unknown", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
