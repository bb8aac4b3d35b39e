package logging

import (
	"io"
	"sync"
)

// Options is the registry's construction state for the shared logger.
type Options struct {
	// Name is the logger name, rendered padded to 12 characters in the
	// file format.
	Name string
	// Level is the threshold for both handlers (DEBUG, INFO, WARNING,
	// ERROR, CRITICAL; case-insensitive).
	Level string
	// Directory is the log directory, created if missing.
	Directory string
	// FileName is the log file name inside Directory.
	FileName string
	// ConsoleWriter overrides the console destination. Nil means stdout.
	// Tests and the TUI redirect console output through this.
	ConsoleWriter io.Writer
}

// DefaultOptions returns the registry state used when no configuration is
// supplied before first acquisition.
func DefaultOptions() Options {
	return Options{
		Name:      "LeanGo",
		Level:     LevelInfo,
		Directory: "logs",
		FileName:  "LeanGo.log",
	}
}

// Overrides carries recognized configuration overrides for Configure.
// Zero-valued fields leave the corresponding registry state untouched.
type Overrides struct {
	Name          string
	Level         string
	Directory     string
	FileName      string
	ConsoleWriter io.Writer
}

// Registry guarantees a single configured logger, lazily created on first
// acquisition. All methods are safe for concurrent use; the construction
// step runs exactly once even under concurrent first access, so handlers
// are never attached twice.
type Registry struct {
	mu     sync.Mutex
	opts   Options
	logger *Logger
}

// NewRegistry creates an unconstructed registry with the given options.
func NewRegistry(opts Options) *Registry {
	return &Registry{opts: opts}
}

// Configure merges recognized overrides into the registry state. Called
// after the logger has been constructed it still records the overrides,
// but has no retroactive effect on the already-attached handlers.
func (r *Registry) Configure(o Overrides) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.Name != "" {
		r.opts.Name = o.Name
	}
	if o.Level != "" {
		r.opts.Level = o.Level
	}
	if o.Directory != "" {
		r.opts.Directory = o.Directory
	}
	if o.FileName != "" {
		r.opts.FileName = o.FileName
	}
	if o.ConsoleWriter != nil {
		r.opts.ConsoleWriter = o.ConsoleWriter
	}
}

// Logger returns the shared logger, constructing it first if absent.
// Construction errors (invalid level, unwritable log directory or file)
// propagate to the caller and leave the registry unconstructed, so a
// corrected configuration can try again.
func (r *Registry) Logger() (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loggerLocked()
}

// Adapter returns a new context adapter bound to the shared logger,
// constructing the logger first if absent.
func (r *Registry) Adapter(ctx Context) (*Adapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger, err := r.loggerLocked()
	if err != nil {
		return nil, err
	}
	return NewAdapter(logger, ctx), nil
}

func (r *Registry) loggerLocked() (*Logger, error) {
	if r.logger != nil {
		return r.logger, nil
	}
	logger, err := newLogger(r.opts)
	if err != nil {
		return nil, err
	}
	r.logger = logger
	return logger, nil
}

// Constructed reports whether the shared logger has been built.
func (r *Registry) Constructed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logger != nil
}

// Close closes the shared logger's file handle, if the logger exists.
// The registry stays constructed; Close is for process shutdown.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.logger == nil {
		return nil
	}
	return r.logger.Close()
}

// shared is the process-wide registry. Call sites acquire the logger and
// adapters from here; tests isolate themselves with Reset.
var shared = NewRegistry(DefaultOptions())

// Configure merges overrides into the process-wide registry.
func Configure(o Overrides) {
	shared.Configure(o)
}

// GetLogger returns the process-wide shared logger, constructing it first
// if absent.
func GetLogger() (*Logger, error) {
	return shared.Logger()
}

// GetAdapter returns a new adapter bound to the process-wide shared
// logger, constructing the logger first if absent. This is the preferred
// way for modules to obtain something to log through.
func GetAdapter(ctx Context) (*Adapter, error) {
	return shared.Adapter(ctx)
}

// Close closes the process-wide shared logger's file handle.
func Close() error {
	return shared.Close()
}

// Reset tears down the process-wide registry and restores defaults.
// Intended for tests, which must not observe state from earlier tests.
func Reset() {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.logger != nil {
		_ = shared.logger.Close()
	}
	shared.logger = nil
	shared.opts = DefaultOptions()
}
