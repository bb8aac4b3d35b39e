package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/leanstack/leango/internal/errors"
)

// Logger is the single shared logger constructed by the registry. It emits
// every record through both the console and file handlers.
// It is safe for concurrent use.
type Logger struct {
	handler slog.Handler
	file    *os.File
	mu      sync.Mutex // protects file operations
	name    string
}

// newLogger constructs the underlying logger: it validates the level,
// creates the log directory, opens the log file for appending, and
// attaches the console and file handlers. The level is validated first so
// a configuration error surfaces before any handler exists.
func newLogger(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Directory, 0755); err != nil {
		return nil, errors.NewResourceError("failed to create log directory", err).
			WithPath(opts.Directory)
	}

	logPath := filepath.Join(opts.Directory, opts.FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.NewResourceError("failed to open log file", err).
			WithPath(logPath)
	}

	console := opts.ConsoleWriter
	if console == nil {
		console = os.Stdout
	}

	handler := &multiHandler{handlers: []slog.Handler{
		newLineHandler(console, level, opts.Name, layoutConsole),
		newLineHandler(file, level, opts.Name, layoutFile),
	}}

	return &Logger{
		handler: handler,
		file:    file,
		name:    opts.Name,
	}, nil
}

// Name returns the configured logger name.
func (l *Logger) Name() string {
	return l.name
}

// Debug logs a message at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.logAt(slog.LevelDebug, msg, args)
}

// Info logs a message at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.logAt(slog.LevelInfo, msg, args)
}

// Warning logs a message at WARNING level with optional key-value pairs.
func (l *Logger) Warning(msg string, args ...any) {
	l.logAt(slog.LevelWarn, msg, args)
}

// Error logs a message at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.logAt(slog.LevelError, msg, args)
}

// Critical logs a message at CRITICAL level with optional key-value pairs.
func (l *Logger) Critical(msg string, args ...any) {
	l.logAt(slogLevelCritical, msg, args)
}

// Exception logs msg at ERROR level, appending the diagnostic detail for
// err in brackets and a stack trace of the calling goroutine. Callers
// should invoke it from the failure path that produced err, since the
// reported source location is the Exception call site.
func (l *Logger) Exception(msg string, err error) {
	l.logAt(slog.LevelError, exceptionMessage(msg, err, callerFrame(2))+"\n"+stackTrace(), nil)
}

// ExceptionNoTrace behaves like Exception without the stack trace, for
// failure paths where the single-line detail is enough.
func (l *Logger) ExceptionNoTrace(msg string, err error) {
	l.logAt(slog.LevelError, exceptionMessage(msg, err, callerFrame(2)), nil)
}

// logAt builds a record pointing at the caller of the exported logging
// method and hands it to the attached handlers. Both Logger and Adapter
// methods sit exactly one frame above this function, which is what the
// fixed skip depth encodes.
func (l *Logger) logAt(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.handler.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, logAt, leveled method
	r := slog.NewRecord(now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.handler.Handle(ctx, r)
}

// Close flushes and closes the log file. The console handler is unaffected.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		if err := l.file.Sync(); err != nil {
			return fmt.Errorf("failed to sync log file: %w", err)
		}
		if err := l.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
		l.file = nil
	}
	return nil
}

// NopLogger returns a Logger that discards all output. Useful for tests
// and for components that accept a logger but run with logging disabled.
func NopLogger() *Logger {
	return &Logger{
		handler: newLineHandler(io.Discard, slogLevelCritical+1, "nop", layoutConsole),
		name:    "nop",
	}
}

// stackTrace returns the current goroutine's stack, trimmed of the
// trailing newline so it nests cleanly under the log line.
func stackTrace() string {
	stack := debug.Stack()
	for len(stack) > 0 && stack[len(stack)-1] == '\n' {
		stack = stack[:len(stack)-1]
	}
	return string(stack)
}
