// Package log builds the diagnostic logger used by the routereport CLI.
//
// Diagnostics always go to a separate writer (stderr in the CLI) so that
// stdout carries nothing but the report itself. In verbose mode the logger
// emits debug records describing the resolved configuration; otherwise only
// warnings and errors are shown.
//
//	logger := log.New(os.Stderr, verbose)
//	logger.Debug("resolved snapshot", "route", snap.RouteName)
package log

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w.
func New(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose),
	}))
}

// Level maps the verbose switch to a slog level.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
