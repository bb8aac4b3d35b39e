package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// lineLayout selects which of the two fixed line formats a handler emits.
type lineLayout int

const (
	// layoutConsole is the ascetic variant: `[HH:MM:SS] LEVEL    [file:line] msg`
	layoutConsole lineLayout = iota
	// layoutFile includes the date and logger name:
	// `[YYYY-MM-DD HH:MM:SS] name         LEVEL    [file:line] msg`
	layoutFile
)

// lineHandler is a slog.Handler that renders records into the fixed-width
// single-line text format existing log scrapers expect. It resolves the
// caller file and line from the record's program counter.
type lineHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Level
	name   string
	layout lineLayout
	attrs  []slog.Attr
}

func newLineHandler(w io.Writer, level slog.Level, name string, layout lineLayout) *lineHandler {
	return &lineHandler{
		mu:     &sync.Mutex{},
		w:      w,
		level:  level,
		name:   name,
		layout: layout,
	}
}

// Enabled reports whether the handler emits records at the given level.
func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders and writes a single record. Writes are serialized so
// concurrent emission never interleaves lines.
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	switch h.layout {
	case layoutFile:
		sb.WriteString(r.Time.Format("[2006-01-02 15:04:05]"))
		sb.WriteByte(' ')
		fmt.Fprintf(&sb, "%-12s ", h.name)
	default:
		sb.WriteString(r.Time.Format("[15:04:05]"))
		sb.WriteByte(' ')
	}

	fmt.Fprintf(&sb, "%-8s ", levelName(r.Level))
	fmt.Fprintf(&sb, "[%s] ", callerLocation(r.PC))
	sb.WriteString(r.Message)

	for _, attr := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", attr.Key, attr.Value.Any())
	}
	r.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", attr.Key, attr.Value.Any())
		return true
	})

	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs returns a handler that appends the given attributes to every line.
func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup is accepted but ignored; the line format has no nesting.
func (h *lineHandler) WithGroup(string) slog.Handler {
	return h
}

// callerLocation resolves a record's program counter into "file.go:line".
// A zero or unresolvable PC degrades to "???:0" rather than failing.
func callerLocation(pc uintptr) string {
	if pc == 0 {
		return "???:0"
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

// multiHandler fans a record out to the console and file handlers. Each
// destination keeps its own level gate, matching the two independently
// leveled handlers the registry attaches.
type multiHandler struct {
	handlers []slog.Handler
}

// Enabled returns true if any destination is enabled for the level.
func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle sends the record to all enabled destinations. The first write
// error is returned after all destinations have been attempted.
func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// WithAttrs returns a handler with additional attributes on every destination.
func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

// WithGroup returns a handler with the group applied to every destination.
func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// now is swappable in tests that assert on timestamps.
var now = time.Now
