// Package logging provides the two file-backed structured log sinks the
// application writes to: a system log for domain events and a controller log
// for request-level events. Both are teed to stdout. The admin API exposes
// the raw files for reading and clearing.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Logs bundles the system and controller loggers together with the files
// backing them.
type Logs struct {
	System     *slog.Logger
	Controller *slog.Logger

	mu             sync.Mutex
	systemPath     string
	controllerPath string
	systemFile     *os.File
	controllerFile *os.File
}

// New opens (creating if needed) the log files at the given paths and builds
// a JSON slog logger over each, teed to stdout.
func New(systemPath, controllerPath string) (*Logs, error) {
	sysFile, err := openLogFile(systemPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open system log: %w", err)
	}
	ctrlFile, err := openLogFile(controllerPath)
	if err != nil {
		sysFile.Close()
		return nil, fmt.Errorf("failed to open controller log: %w", err)
	}

	return &Logs{
		System:         newJSONLogger(sysFile),
		Controller:     newJSONLogger(ctrlFile),
		systemPath:     systemPath,
		controllerPath: controllerPath,
		systemFile:     sysFile,
		controllerFile: ctrlFile,
	}, nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func newJSONLogger(f *os.File) *slog.Logger {
	handler := slog.NewJSONHandler(io.MultiWriter(os.Stdout, f), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// ReadSystem returns the raw contents of the system log file.
func (l *Logs) ReadSystem() (string, error) {
	return l.readFile(l.systemPath)
}

// ReadController returns the raw contents of the controller log file.
func (l *Logs) ReadController() (string, error) {
	return l.readFile(l.controllerPath)
}

func (l *Logs) readFile(path string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read log file %s: %w", path, err)
	}
	return string(data), nil
}

// ClearSystem truncates the system log file in place. The logger keeps
// appending to the same file handle afterwards.
func (l *Logs) ClearSystem() error {
	return l.clearFile(l.systemFile)
}

// ClearController truncates the controller log file in place.
func (l *Logs) ClearController() error {
	return l.clearFile(l.controllerFile)
}

func (l *Logs) clearFile(f *os.File) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate log file: %w", err)
	}
	// Reset the append offset so new records start at the beginning.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind log file: %w", err)
	}
	return nil
}

// Close releases the underlying file handles.
func (l *Logs) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var errs []error
	if err := l.systemFile.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := l.controllerFile.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to close log files: %v", errs)
	}
	return nil
}
