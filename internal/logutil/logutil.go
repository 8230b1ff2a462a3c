// Package logutil configures the slog logger used by the command line tool
// and the worker pool, including a TRACE level below DEBUG.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// LevelTrace is quieter than slog.LevelDebug. Partitioning decisions are
// logged at this level.
const LevelTrace slog.Level = -8

// NewLogger returns a text logger writing to w that reports the source file
// of each record by base name.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if lvl, ok := attr.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

type key string

// WithComponent returns a context whose trace records carry a component
// attribute naming the layer that logged them.
func WithComponent(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, key("component"), name)
}

// Layout groups a shape and its strides under one "layout" attribute,
// rendered as bracketed lists such as [2, 3].
func Layout(shape, strides []int) slog.Attr {
	return slog.Group("layout",
		slog.String("shape", formatInts(shape)),
		slog.String("strides", formatInts(strides)))
}

func formatInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Trace logs msg at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	TraceContext(context.WithValue(context.TODO(), key("skip"), 1), msg, args...)
}

// TraceContext is Trace with a context. The record's source is the caller.
func TraceContext(ctx context.Context, msg string, args ...any) {
	if logger := slog.Default(); logger.Enabled(ctx, LevelTrace) {
		skip, _ := ctx.Value(key("skip")).(int)
		pc, _, _, _ := runtime.Caller(1 + skip)
		record := slog.NewRecord(time.Now(), LevelTrace, msg, pc)
		if name, ok := ctx.Value(key("component")).(string); ok {
			record.AddAttrs(slog.String("component", name))
		}
		record.Add(args...)
		_ = logger.Handler().Handle(ctx, record)
	}
}
