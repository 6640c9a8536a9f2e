// Package cli implements the archdiagram command-line interface.
//
// The CLI renders diagram descriptions (TOML or JSON) and the built-in
// catalog through pkg/render/nodelink. It is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - render: Render a TOML or JSON diagram description to an image
//   - catalog: List, render, or export the built-in diagrams
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context and bound to the render observability hooks,
// so library packages never log directly.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/archdiagram/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered diagram.png (84ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports render lifecycle events to a logger.
type logHooks struct {
	logger *log.Logger
}

var _ observability.RenderHooks = logHooks{}

func (h logHooks) OnRenderStart(ctx context.Context, ev observability.RenderStart) context.Context {
	h.logger.Debug("render start",
		"path", ev.Path, "format", ev.Format,
		"nodes", ev.Nodes, "edges", ev.Edges, "clusters", ev.Clusters)
	return ctx
}

func (h logHooks) OnRenderComplete(_ context.Context, res observability.RenderResult) {
	if res.Err != nil {
		h.logger.Debug("render failed", "path", res.Path, "err", res.Err)
		return
	}
	h.logger.Debug("render complete",
		"path", res.Path, "bytes", res.Size,
		"duration", res.Duration.Round(time.Millisecond))
}
