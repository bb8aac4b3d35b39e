package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/leanstack/leango/internal/errors"
)

// setupRegistry resets the shared registry and points it at a temp log
// directory and an in-memory console. Returns the console buffer and the
// log file path.
func setupRegistry(t *testing.T, level string) (*bytes.Buffer, string) {
	t.Helper()

	Reset()
	t.Cleanup(Reset)

	dir := t.TempDir()
	console := &bytes.Buffer{}
	Configure(Overrides{
		Level:         level,
		Directory:     dir,
		ConsoleWriter: console,
	})
	return console, filepath.Join(dir, DefaultOptions().FileName)
}

func consoleLines(console *bytes.Buffer) []string {
	out := strings.TrimRight(console.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestGetLogger(t *testing.T) {
	t.Run("constructs lazily and creates the log file", func(t *testing.T) {
		_, logPath := setupRegistry(t, LevelDebug)

		logger, err := GetLogger()
		if err != nil {
			t.Fatalf("GetLogger failed: %v", err)
		}
		if logger == nil {
			t.Fatal("expected a logger")
		}
		if _, err := os.Stat(logPath); err != nil {
			t.Errorf("log file was not created at %s: %v", logPath, err)
		}
	})

	t.Run("returns the same instance on repeated acquisition", func(t *testing.T) {
		setupRegistry(t, LevelDebug)

		first, err := GetLogger()
		if err != nil {
			t.Fatalf("GetLogger failed: %v", err)
		}
		second, err := GetLogger()
		if err != nil {
			t.Fatalf("second GetLogger failed: %v", err)
		}
		if first != second {
			t.Error("expected repeated acquisition to return the same logger")
		}
	})

	t.Run("repeated acquisition does not duplicate handlers", func(t *testing.T) {
		console, _ := setupRegistry(t, LevelDebug)

		for range 5 {
			if _, err := GetLogger(); err != nil {
				t.Fatalf("GetLogger failed: %v", err)
			}
		}

		logger, _ := GetLogger()
		logger.Info("only once")

		if got := len(consoleLines(console)); got != 1 {
			t.Errorf("expected exactly 1 console line, got %d:\n%s", got, console.String())
		}
	})
}

func TestGetAdapter(t *testing.T) {
	console, _ := setupRegistry(t, LevelDebug)

	adapter, err := GetAdapter(Text("startup"))
	if err != nil {
		t.Fatalf("GetAdapter failed: %v", err)
	}
	adapter.Info("hello")

	if !shared.Constructed() {
		t.Error("expected adapter acquisition to construct the shared logger")
	}
	if out := console.String(); !strings.Contains(out, "[startup] hello") {
		t.Errorf("expected context-prefixed message, got: %q", out)
	}
}

func TestLevelThreshold(t *testing.T) {
	// A DEBUG emission is observed iff the configured level is DEBUG.
	for _, level := range ValidLevels() {
		t.Run(level, func(t *testing.T) {
			console, _ := setupRegistry(t, level)

			logger, err := GetLogger()
			if err != nil {
				t.Fatalf("GetLogger failed: %v", err)
			}
			logger.Debug("needle")

			got := strings.Contains(console.String(), "needle")
			want := level == LevelDebug
			if got != want {
				t.Errorf("level %s: debug message observed = %v, want %v", level, got, want)
			}
		})
	}
}

func TestConfigure(t *testing.T) {
	t.Run("overrides before construction take effect", func(t *testing.T) {
		console, _ := setupRegistry(t, LevelInfo)
		Configure(Overrides{Level: LevelDebug})

		logger, err := GetLogger()
		if err != nil {
			t.Fatalf("GetLogger failed: %v", err)
		}
		logger.Debug("visible")

		if !strings.Contains(console.String(), "visible") {
			t.Error("expected pre-construction override to lower the threshold")
		}
	})

	t.Run("overrides after construction have no retroactive effect", func(t *testing.T) {
		console, _ := setupRegistry(t, LevelInfo)

		logger, err := GetLogger()
		if err != nil {
			t.Fatalf("GetLogger failed: %v", err)
		}

		Configure(Overrides{Level: LevelDebug})
		logger.Debug("still filtered")

		if strings.Contains(console.String(), "still filtered") {
			t.Error("expected post-construction override to leave attached handlers alone")
		}
	})
}

func TestAcquisitionErrors(t *testing.T) {
	t.Run("invalid level fails fast before any handler is attached", func(t *testing.T) {
		_, logPath := setupRegistry(t, "LOUD")

		_, err := GetLogger()
		if err == nil {
			t.Fatal("expected an error for an invalid level")
		}
		if !errors.Is(err, errors.ErrInvalidLogLevel) {
			t.Errorf("expected ErrInvalidLogLevel, got: %v", err)
		}
		var cfgErr *errors.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected a ConfigurationError, got: %T", err)
		}
		if _, statErr := os.Stat(logPath); !os.IsNotExist(statErr) {
			t.Error("expected no log file after a failed construction")
		}
	})

	t.Run("registry stays unconstructed so a corrected config can retry", func(t *testing.T) {
		setupRegistry(t, "LOUD")

		if _, err := GetLogger(); err == nil {
			t.Fatal("expected an error for an invalid level")
		}

		Configure(Overrides{Level: LevelInfo})
		if _, err := GetLogger(); err != nil {
			t.Fatalf("expected acquisition to succeed after correction: %v", err)
		}
	})

	t.Run("unwritable log directory propagates a resource error", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)

		// A regular file where the directory should be makes MkdirAll fail.
		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create blocker file: %v", err)
		}
		Configure(Overrides{Directory: filepath.Join(blocker, "logs")})

		_, err := GetLogger()
		if err == nil {
			t.Fatal("expected an error for an unwritable directory")
		}
		var resErr *errors.ResourceError
		if !errors.As(err, &resErr) {
			t.Errorf("expected a ResourceError, got: %T (%v)", err, err)
		}
	})
}

func TestConcurrentFirstAcquisition(t *testing.T) {
	console, logPath := setupRegistry(t, LevelDebug)

	const callers = 32
	loggers := make([]*Logger, callers)

	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger, err := GetLogger()
			if err != nil {
				t.Errorf("concurrent GetLogger failed: %v", err)
				return
			}
			loggers[i] = logger
		}()
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if loggers[i] != loggers[0] {
			t.Fatal("concurrent acquisition produced more than one logger")
		}
	}

	// One handler pair means one line per destination per message.
	loggers[0].Info("single emission")

	if got := len(consoleLines(console)); got != 1 {
		t.Errorf("expected exactly 1 console line, got %d", got)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if got := strings.Count(string(data), "single emission"); got != 1 {
		t.Errorf("expected exactly 1 file line, got %d", got)
	}
}

func TestRegistryIsolation(t *testing.T) {
	// Independent registries do not share logger state.
	dirA, dirB := t.TempDir(), t.TempDir()

	regA := NewRegistry(Options{Name: "A", Level: LevelDebug, Directory: dirA, FileName: "a.log", ConsoleWriter: &bytes.Buffer{}})
	regB := NewRegistry(Options{Name: "B", Level: LevelDebug, Directory: dirB, FileName: "b.log", ConsoleWriter: &bytes.Buffer{}})

	loggerA, err := regA.Logger()
	if err != nil {
		t.Fatalf("registry A failed: %v", err)
	}
	loggerB, err := regB.Logger()
	if err != nil {
		t.Fatalf("registry B failed: %v", err)
	}
	if loggerA == loggerB {
		t.Error("expected independent registries to construct independent loggers")
	}
	if loggerA.Name() != "A" || loggerB.Name() != "B" {
		t.Errorf("unexpected logger names: %q, %q", loggerA.Name(), loggerB.Name())
	}
}
