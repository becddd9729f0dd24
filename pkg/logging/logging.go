// Package logging builds the *slog.Logger every binary in this module
// starts from: a single handler that can render either human-readable text
// or JSON, plus a context.Context carrier for attributes that should be
// attached to every log line written against a derived context (request
// IDs, correlation UUIDs) without threading them through every call site.
package logging

import (
	"context"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ctxKey is the unexported type for the context attrs accumulated by
// AppendCtx, so it can't collide with keys set by other packages.
type ctxKey struct{}

// Logger builds a slog.Logger writing to w, either as JSON (for log
// aggregation) or slog's default text handler (for a terminal), at the
// given minimum level. The handler is wrapped with ctxHandler so any
// attributes stashed via AppendCtx are attached automatically.
func Logger(w io.Writer, json bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(&ctxHandler{Handler: h})
}

// RotatingWriter returns a size- and age-bounded rotating log file writer
// suitable for passing to Logger, for long-running decode services that
// shouldn't write to stdout.
func RotatingWriter(path string, maxSizeMB, maxBackups, maxAgeDays int) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
}

// AppendCtx returns a context carrying attrs in addition to any already
// present; a Logger built by this package will attach them to every
// record logged with that context via the *Context logging methods
// (InfoContext, WarnContext, ...).
func AppendCtx(ctx context.Context, attrs ...slog.Attr) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

// ctxHandler is a slog.Handler decorator that prepends attributes stashed
// in the record's context (via AppendCtx) onto every record before
// delegating to the wrapped handler.
type ctxHandler struct {
	slog.Handler
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{Handler: h.Handler.WithGroup(name)}
}
