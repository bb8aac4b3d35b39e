// Package logging provides the shared logging facility for leango.
//
// One underlying logger exists per process, lazily constructed on first
// acquisition and shared by every call site. Modules do not create their
// own loggers; they pull lightweight context adapters from the shared
// registry instead:
//
//	adapter, err := logging.GetAdapter(logging.Text("ingest"))
//	if err != nil { ... }
//	adapter.Info("starting up")
//	// => [12:04:05] INFO     [main.go:14] [ingest] starting up
//
// The registry can be configured before the first acquisition; overrides
// supplied after construction are merged into registry state but have no
// retroactive effect on the already-attached handlers:
//
//	logging.Configure(logging.Overrides{Level: "debug", Directory: "logs"})
//
// # Output
//
// Two handlers are attached on construction, each independently leveled at
// the configured level:
//
//   - a console handler writing to stdout:
//     `[HH:MM:SS] LEVEL    [file:line] message`
//   - a file handler appending UTF-8 text to <directory>/<file name>:
//     `[YYYY-MM-DD HH:MM:SS] name         LEVEL    [file:line] message`
//
// The logger name is padded to 12 characters and the level to 8, so
// existing log scrapers can rely on fixed column offsets.
//
// # Exceptions
//
// Error values logged through Exception are augmented with a diagnostic
// string locating the failure:
//
//	[Exception in cmd/demo.go:42 - ResourceError - open logs/LeanGo.log: permission denied - An external resource required for logging could not be acquired.]
//
// Detail extraction never fails; when a source path cannot be relativized
// to the project root the raw path is used as-is.
//
// # Concurrency
//
// The registry serializes construction behind a mutex so that concurrent
// first acquisitions attach exactly one handler pair. Emission is safe for
// concurrent use; each handler serializes writes internally.
package logging
