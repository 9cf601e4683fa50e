package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("", "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if l.Enabled() {
		t.Error("logger with empty path should be disabled")
	}
	l.Log("dropped %d", 1)
	if err := l.Close(); err != nil {
		t.Errorf("Close on nop logger: %v", err)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log("nothing")
	if l.Enabled() || l.Path() != "" {
		t.Error("nil logger should report disabled")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}

func TestLog_WritesHeaderAndLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	l, err := New(path, "Studio")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Log("vowel level=%d", 3)
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Writes after close are dropped.
	l.Log("late")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "=== Studio Debug Log Started at") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "vowel level=3") {
		t.Errorf("line = %q", lines[1])
	}
}

func TestPrintf_UsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := New(path, "CLI")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	SetDefault(l)
	t.Cleanup(func() {
		SetDefault(nil)
		l.Close()
	})

	Printf("hello %s", "world")

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "hello world") {
		t.Errorf("log missing Printf output:\n%s", data)
	}
}
