package cli

import (
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// newLogHandler returns the slog handler for the process: a colored,
// human-readable charmbracelet handler in development and JSON elsewhere.
func newLogHandler(w io.Writer, dev, verbose bool) slog.Handler {
	if dev {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		return charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Level:           level,
		})
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
