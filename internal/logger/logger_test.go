package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	lg, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	lg.Info("expense recorded", map[string]interface{}{"amount": 42.5})
	lg.Error("save failed", errors.New("disk full"), nil)
	lg.Warn("budget nearly spent", nil)
	if err := lg.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	if len(lines) != 3 {
		t.Fatalf("log has %d lines, want 3", len(lines))
	}

	var first LogEntry
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if first.Level != Info {
		t.Errorf("first level = %q, want %q", first.Level, Info)
	}
	if first.Message != "expense recorded" {
		t.Errorf("first message = %q", first.Message)
	}
	if first.Timestamp.IsZero() {
		t.Error("first entry has no timestamp")
	}

	var second LogEntry
	if err := json.Unmarshal(lines[1], &second); err != nil {
		t.Fatalf("second line is not JSON: %v", err)
	}
	if second.Level != Error {
		t.Errorf("second level = %q, want %q", second.Level, Error)
	}

	var ctx map[string]interface{}
	if err := json.Unmarshal(second.Data, &ctx); err != nil {
		t.Fatalf("second entry data is not JSON: %v", err)
	}
	if ctx["error"] != "disk full" {
		t.Errorf("error context = %v, want disk full", ctx["error"])
	}

	var third LogEntry
	if err := json.Unmarshal(lines[2], &third); err != nil {
		t.Fatalf("third line is not JSON: %v", err)
	}
	if third.Level != Warn {
		t.Errorf("third level = %q, want %q", third.Level, Warn)
	}
}

func TestGetLoggerReturnsOneInstance(t *testing.T) {
	a, err := GetLogger(filepath.Join(t.TempDir(), "first.log"))
	if err != nil {
		t.Fatalf("GetLogger failed: %v", err)
	}
	b, err := GetLogger(filepath.Join(t.TempDir(), "second.log"))
	if err != nil {
		t.Fatalf("GetLogger failed on second call: %v", err)
	}
	if a != b {
		t.Error("GetLogger returned two different loggers")
	}
}

func TestLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	lg, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	lg.Info("first run", nil)
	lg.Close()

	lg, err = NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger failed on reopen: %v", err)
	}
	lg.Info("second run", nil)
	lg.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if n := len(bytes.Split(bytes.TrimSpace(data), []byte("\n"))); n != 2 {
		t.Errorf("log has %d lines after reopen, want 2", n)
	}
}
