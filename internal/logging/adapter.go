package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// contextKind tags the variant carried by a Context.
type contextKind int

const (
	contextNone contextKind = iota
	contextText
	contextFields
)

// Field is a single key-value pair of adapter context.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Context is the payload an adapter prepends to every message. It is a
// tagged variant: no context, free-form text, or an ordered field list.
// The zero value carries no context.
type Context struct {
	kind   contextKind
	text   string
	fields []Field
}

// None is the empty context; messages pass through unchanged.
var None = Context{}

// Text returns a context rendering as "[s] " before each message.
func Text(s string) Context {
	return Context{kind: contextText, text: s}
}

// Fields returns a context rendering as "[k1: v1, k2: v2] " before each
// message. Fields render in the order given.
func Fields(fields ...Field) Context {
	return Context{kind: contextFields, fields: fields}
}

// prefix renders the context for prepending; empty for the none variant.
func (c Context) prefix() string {
	switch c.kind {
	case contextText:
		return "[" + c.text + "] "
	case contextFields:
		pairs := make([]string, len(c.fields))
		for i, f := range c.fields {
			pairs[i] = fmt.Sprintf("%s: %v", f.Key, f.Value)
		}
		return "[" + strings.Join(pairs, ", ") + "] "
	default:
		return ""
	}
}

// Adapter wraps the shared logger with a fixed context payload. Adapters
// are cheap, stateless beyond their context, and safe to create per call
// site; any number of them may wrap the one shared logger concurrently.
type Adapter struct {
	logger *Logger
	ctx    Context
}

// NewAdapter binds a context to a logger. Most callers should use
// GetAdapter, which also takes care of constructing the shared logger.
func NewAdapter(logger *Logger, ctx Context) *Adapter {
	return &Adapter{logger: logger, ctx: ctx}
}

// Logger returns the underlying shared logger.
func (a *Adapter) Logger() *Logger {
	return a.logger
}

// Debug logs a context-prefixed message at DEBUG level.
func (a *Adapter) Debug(msg string, args ...any) {
	a.logger.logAt(slog.LevelDebug, a.ctx.prefix()+msg, args)
}

// Info logs a context-prefixed message at INFO level.
func (a *Adapter) Info(msg string, args ...any) {
	a.logger.logAt(slog.LevelInfo, a.ctx.prefix()+msg, args)
}

// Warning logs a context-prefixed message at WARNING level.
func (a *Adapter) Warning(msg string, args ...any) {
	a.logger.logAt(slog.LevelWarn, a.ctx.prefix()+msg, args)
}

// Error logs a context-prefixed message at ERROR level.
func (a *Adapter) Error(msg string, args ...any) {
	a.logger.logAt(slog.LevelError, a.ctx.prefix()+msg, args)
}

// Critical logs a context-prefixed message at CRITICAL level.
func (a *Adapter) Critical(msg string, args ...any) {
	a.logger.logAt(slogLevelCritical, a.ctx.prefix()+msg, args)
}

// Exception logs a context-prefixed message at ERROR level with the
// diagnostic detail for err appended, plus a stack trace.
func (a *Adapter) Exception(msg string, err error) {
	composed := exceptionMessage(a.ctx.prefix()+msg, err, callerFrame(2))
	a.logger.logAt(slog.LevelError, composed+"\n"+stackTrace(), nil)
}

// ExceptionNoTrace behaves like Exception without the stack trace.
func (a *Adapter) ExceptionNoTrace(msg string, err error) {
	a.logger.logAt(slog.LevelError, exceptionMessage(a.ctx.prefix()+msg, err, callerFrame(2)), nil)
}
