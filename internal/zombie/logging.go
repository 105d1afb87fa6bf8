package zombie

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Logger receives the generator's debug events. It discards everything
// until InitLogger opens a log file.
var Logger = slog.New(slog.DiscardHandler)

var logFile *os.File

// InitLogger appends generator events to logPath as text records tagged with
// the invoking PID, which is the PID the zombie is attributed to.
// An empty logPath keeps the logger silent.
func InitLogger(logPath string) error {
	if err := CloseLogger(); err != nil {
		return err
	}
	if logPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	logFile = f

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	Logger = slog.New(handler).With("ppid", os.Getpid())
	return nil
}

// CloseLogger releases the log file, if any, and goes back to discarding
func CloseLogger() error {
	Logger = slog.New(slog.DiscardHandler)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
