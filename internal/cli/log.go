package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DefaultLogFile is where the log goes while the TUI owns the terminal
const DefaultLogFile = "lazypager.log"

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLog opens the append-only log file. An empty path or an unwritable file disables logging.
func openLog(path string, verbose bool) (*log.Logger, func()) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if path == "" {
		return newLogger(io.Discard, level), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger := newLogger(os.Stderr, level)
		logger.Warn("could not open log file, logging disabled", "path", path, "err", err)
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	return newLogger(f, level), func() { _ = f.Close() }
}
