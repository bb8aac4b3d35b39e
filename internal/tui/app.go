// Package tui implements the interactive demo menu: an alt-screen
// bubbletea program that exercises the shared logger, the context
// adapters, and the exception formatter, showing the captured console
// output in a pane instead of letting it corrupt the screen.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leanstack/leango/internal/config"
	"github.com/leanstack/leango/internal/logging"
)

// App wraps the bubbletea program for the demo.
type App struct {
	program *tea.Program
}

// New builds the demo app. The shared logger's console destination is
// redirected into an in-memory capture, so this must run before the
// logger is first acquired.
func New(cfg *config.Config) *App {
	capture := &logCapture{}
	logging.Configure(logging.Overrides{ConsoleWriter: capture})

	model := NewModel(cfg, capture)
	return &App{
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Run blocks until the user quits.
func (a *App) Run() error {
	_, err := a.program.Run()
	return err
}
