package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leanstack/leango/internal/config"
	"github.com/leanstack/leango/internal/logging"
	"github.com/leanstack/leango/internal/testutil"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// setupModel wires the shared registry to a temp directory and an
// in-memory capture, then builds a model around it.
func setupModel(t *testing.T, level string) Model {
	t.Helper()
	logging.Reset()
	t.Cleanup(logging.Reset)

	dir := t.TempDir()
	capture := &logCapture{}
	logging.Configure(logging.Overrides{
		Level:         level,
		Directory:     dir,
		ConsoleWriter: capture,
	})

	cfg := config.Default()
	cfg.Logging.Directory = dir
	cfg.Logging.Level = level
	return NewModel(cfg, capture)
}

func update(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	t.Run("cursor stays in bounds", func(t *testing.T) {
		m := setupModel(t, logging.LevelInfo)
		m = update(t, m, "up")
		if m.cursor != 0 {
			t.Fatalf("cursor = %d, want 0", m.cursor)
		}
		for range mainMenu {
			m = update(t, m, "down")
		}
		if m.cursor != len(mainMenu)-1 {
			t.Fatalf("cursor = %d, want %d", m.cursor, len(mainMenu)-1)
		}
	})

	t.Run("quit item stops the program", func(t *testing.T) {
		m := setupModel(t, logging.LevelInfo)
		for range mainMenu {
			m = update(t, m, "down")
		}
		next, cmd := m.Update(keyMsg("enter"))
		m = next.(Model)
		if !m.quitting {
			t.Fatal("expected quitting after selecting the last item")
		}
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
	})

	t.Run("submenu opens and esc returns", func(t *testing.T) {
		m := setupModel(t, logging.LevelInfo)
		m = update(t, m, "down", "down", "down", "enter")
		if m.screen != screenLoggerMenu {
			t.Fatalf("screen = %d, want logger menu", m.screen)
		}
		m = update(t, m, "esc")
		if m.screen != screenMain {
			t.Fatalf("screen = %d, want main menu", m.screen)
		}
	})

	t.Run("help shows output view", func(t *testing.T) {
		m := setupModel(t, logging.LevelInfo)
		m = update(t, m, "enter")
		if m.screen != screenOutput {
			t.Fatalf("screen = %d, want output view", m.screen)
		}
		if !strings.Contains(strings.Join(m.output, "\n"), "--somenumber") {
			t.Fatal("help output should mention --somenumber")
		}
		m = update(t, m, "x")
		if m.screen != screenMain {
			t.Fatal("any key should leave the output view")
		}
	})
}

func TestLoggerDemo(t *testing.T) {
	m := setupModel(t, logging.LevelInfo)
	lines := m.runLoggerDemo()

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"INFO", "WARNING", "ERROR", "CRITICAL"} {
		if !strings.Contains(joined, want) {
			t.Errorf("output missing %s level:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, "DEBUG") {
		t.Errorf("DEBUG message should be filtered at INFO:\n%s", joined)
	}
	if !strings.Contains(joined, "demos.go:") {
		t.Errorf("messages should point at the demo call site:\n%s", joined)
	}
}

func TestAdapterDemo(t *testing.T) {
	m := setupModel(t, logging.LevelDebug)
	lines := m.runAdapterDemo("session 9")

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "[session 9] ") {
		t.Errorf("adapter output missing text context:\n%s", joined)
	}
	if !strings.Contains(joined, "[component: demo, attempt: 1] ") {
		t.Errorf("adapter output missing field context:\n%s", joined)
	}
	if !strings.Contains(joined, "DEBUG") {
		t.Errorf("DEBUG message should appear at the DEBUG level:\n%s", joined)
	}
}

func TestExceptionDemo(t *testing.T) {
	m := setupModel(t, logging.LevelInfo)
	lines := m.runExceptionDemo()

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "divisionByZeroError") {
		t.Errorf("exception output missing error type:\n%s", joined)
	}
	if !strings.Contains(joined, "Integer division requires a non-zero divisor.") {
		t.Errorf("exception output missing error doc:\n%s", joined)
	}
	if !strings.Contains(joined, "[calculator] ") {
		t.Errorf("adapter exception should keep its context prefix:\n%s", joined)
	}
}

func TestCaptureRedirect(t *testing.T) {
	m := setupModel(t, logging.LevelInfo)
	m.runLoggerDemo()

	// File output is unaffected by the console capture.
	path := filepath.Join(m.cfg.Logging.Directory, "LeanGo.log")
	if _, err := logging.GetLogger(); err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	data := strings.Join(testutil.ReadLogLines(t, path), "\n")
	if !strings.Contains(data, "every acquisition returns the same logger instance") {
		t.Errorf("log file missing demo message:\n%s", data)
	}
}
