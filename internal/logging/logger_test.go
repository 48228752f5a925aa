package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(INFO, false)
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.WithField("stage", "cleanup").Info("Cleanup complete", map[string]interface{}{"call": "abc"})

	got := strings.TrimSpace(buf.String())
	want := "INFO: Cleanup complete call=abc stage=cleanup"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WARN, false)
	l.SetOutput(&buf)

	l.Debug("debug line")
	l.Info("info line")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below WARN, got %q", buf.String())
	}

	l.Error("error line")
	if !strings.Contains(buf.String(), "ERROR: error line") {
		t.Errorf("expected error line, got %q", buf.String())
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(DEBUG, true)
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.Warn("careful", map[string]interface{}{"file": "a.txt"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry.Level != "WARN" || entry.Message != "careful" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Fields["file"] != "a.txt" {
		t.Errorf("expected file field, got %v", entry.Fields)
	}
	if entry.Timestamp != "" {
		t.Errorf("expected no timestamp, got %q", entry.Timestamp)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(INFO, false)
	parent.SetOutput(&buf)
	parent.SetTimestamps(false)

	_ = parent.WithField("child", true)
	parent.Info("plain")

	if got := strings.TrimSpace(buf.String()); got != "INFO: plain" {
		t.Errorf("parent picked up child field: %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"warning", WARN},
		{"Error", ERROR},
		{"bogus", INFO},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAtMost(t *testing.T) {
	var buf bytes.Buffer
	strict := NewLogger(ERROR, false)
	strict.SetOutput(&buf)
	strict.SetTimestamps(false)

	capped := strict.AtMost(INFO)
	capped.Info("kept")
	capped.Debug("still filtered")
	strict.Info("dropped by the original")

	if got := strings.TrimSpace(buf.String()); got != "INFO: kept" {
		t.Errorf("got %q, want %q", got, "INFO: kept")
	}

	verbose := NewLogger(DEBUG, false).AtMost(INFO)
	if verbose.level != DEBUG {
		t.Errorf("AtMost raised a lower threshold to %v", verbose.level)
	}
}
