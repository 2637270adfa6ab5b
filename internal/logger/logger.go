// Package logger provides the scaffold log: every run writes a timestamped
// file under the log directory and can echo the same lines to a console writer.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const appDir = "create-mini-vite"

// Logger writes to a log file and, optionally, a console writer.
type Logger struct {
	w    io.Writer
	file *os.File
}

// DefaultDir returns <user cache dir>/create-mini-vite/logs, falling back
// to the system temp dir when no cache dir is available.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appDir, "logs")
}

// New creates a logger that writes to <logDir>/scaffold-<ts>.log and to echo when non-nil.
func New(logDir string, echo io.Writer) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs dir: %w", err)
	}

	ts := time.Now().Format("20060102-150405")
	logPath := filepath.Join(logDir, fmt.Sprintf("scaffold-%s.log", ts))

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	var w io.Writer = f
	if echo != nil {
		w = io.MultiWriter(echo, f)
	}
	return &Logger{w: w, file: f}, nil
}

// NewDiscard returns a logger that drops everything.
func NewDiscard() *Logger {
	return &Logger{w: io.Discard}
}

// NewWriter returns a logger writing only to w. Used by tests to capture output.
func NewWriter(w io.Writer) *Logger {
	return &Logger{w: w}
}

// LogPath returns the path of the current log file, or empty string if there is none.
func (l *Logger) LogPath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Write implements io.Writer.
func (l *Logger) Write(p []byte) (n int, err error) {
	return l.w.Write(p)
}

// Printf writes a formatted line to the log.
func (l *Logger) Printf(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// LatestLogPath returns the most recent scaffold log in logDir, or "" if none exist.
func LatestLogPath(logDir string) string {
	entries, err := os.ReadDir(logDir)
	if err != nil || len(entries) == 0 {
		return ""
	}
	// ReadDir sorts by name; scaffold-<ts> logs sort chronologically.
	latest := ""
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "scaffold-") {
			latest = filepath.Join(logDir, e.Name())
		}
	}
	return latest
}
