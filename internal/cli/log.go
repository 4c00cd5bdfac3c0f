// Package cli implements the domrep command-line interface.
//
// This package provides commands for building HTML reports from manifests,
// for arranging image files into grids and sliders, and for writing demo
// reports. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Build a report from a TOML or YAML manifest
//   - grid: Embed image files into a captioned CSS grid
//   - slider: Embed image files into a frame slider
//   - demo: Write a set of example reports
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and every image encode is reported through
// the observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built report (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// encodeLogHooks reports image encoding through a logger. Successful encodes
// are logged at debug level, failures as warnings.
type encodeLogHooks struct {
	logger *log.Logger
}

func (h encodeLogHooks) OnEncodeStart(_ context.Context, kind, format string) {
	h.logger.Debug("encoding", "kind", kind, "format", format)
}

func (h encodeLogHooks) OnEncodeComplete(_ context.Context, kind, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("encode failed", "kind", kind, "format", format, "err", err)
		return
	}
	h.logger.Debug("encoded", "kind", kind, "format", format, "size", formatSize(size), "took", d.Round(time.Millisecond))
}
