// Package debuglog is songsmith's append-only debug log.
package debuglog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// SetDefault installs l as the package-level logger used by Printf.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Printf writes to the package-level logger, if one is installed.
func Printf(format string, args ...any) {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()

	l.Log(format, args...)
}

// Logger writes timestamped lines to a file. The zero value and a nil
// *Logger discard everything.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// New opens a logger appending to path, creating parent directories.
// An empty path returns a no-op logger.
func New(path, component string) (*Logger, error) {
	if path == "" {
		return &Logger{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{file: f, path: path}
	l.Log("=== %s Debug Log Started at %s ===", component, time.Now().Format(time.RFC3339))
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{}
}

// Enabled reports whether the logger writes anywhere.
func (l *Logger) Enabled() bool {
	return l != nil && l.file != nil
}

// Path returns the log file path, or "" for a no-op logger.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Log writes a timestamped message.
func (l *Logger) Log(format string, args ...any) {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.file, "[%s] %s\n", time.Now().Format("15:04:05.000"), msg)
	l.file.Sync()
}

// Close closes the log file. Safe on nil and no-op loggers.
func (l *Logger) Close() error {
	if !l.Enabled() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.file.Close()
	l.file = nil
	return err
}
