// Package cli implements the analogue command-line interface.
//
// This package provides commands for measuring and drawing the nodes of a
// node-graph document, browsing them interactively, and converting documents
// between formats. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw nodes at their minimum size
//   - size: Tabulate minimum sizes
//   - types: List the types a document defines or uses
//   - browse: Fuzzy-find nodes and preview them (bubbletea)
//   - preview: Full-screen node viewer (tcell)
//   - convert: Rewrite a document as JSON, YAML or TOML
//   - config: Show or initialize the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Renderer, cache and document events are
// logged at debug level through observability hooks.
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
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Loaded 12 nodes (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks forwards renderer, cache and document events to the logger at
// debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnMeasure(node string, width, height int, d time.Duration) {
	h.logger.Debug("measured node", "node", node, "width", width, "height", height, "took", d)
}

func (h logHooks) OnPaint(node string, width, height int, err error) {
	if err != nil {
		h.logger.Debug("paint failed", "node", node, "width", width, "height", height, "error", err)
		return
	}
	h.logger.Debug("painted node", "node", node, "width", width, "height", height)
}

func (h logHooks) OnCacheHit(keyType string)        { h.logger.Debug("cache hit", "key", keyType) }
func (h logHooks) OnCacheMiss(keyType string)       { h.logger.Debug("cache miss", "key", keyType) }
func (h logHooks) OnCacheInvalidate(keyType string) { h.logger.Debug("cache cleared", "key", keyType) }

func (h logHooks) OnLoad(path, format string, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "format", format, "error", err)
		return
	}
	h.logger.Debug("loaded document", "path", path, "format", format, "nodes", nodeCount, "took", d)
}

func (h logHooks) OnBuild(typeCount, nodeCount int, err error) {
	h.logger.Debug("built document", "types", typeCount, "nodes", nodeCount, "error", err)
}
