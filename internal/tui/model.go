package tui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leanstack/leango/internal/config"
	"github.com/leanstack/leango/internal/logging"
	"github.com/leanstack/leango/internal/tui/styles"
	"github.com/leanstack/leango/internal/util"
)

// screen identifies which view the model is showing.
type screen int

const (
	screenMain screen = iota
	screenLoggerMenu
	screenContextInput
	screenOutput
)

// helpText documents the command-line surface, mirroring `leango --help`
// inside the demo.
const helpText = `Command line arguments:

Project options:
  --somenumber <number>   Set example.some_number to <number>. Default is 10.
  -b, --boolean           Set example.boolean to true. Defaults to false.

Logging configurations:
  -d, --debug             Set logging level to DEBUG. Defaults to INFO.
  --date                  Suffix the log file with the process start time.`

var mainMenu = []string{
	"Show help",
	"Show configuration",
	"Check environment",
	"Logger demonstrations",
	"Quit",
}

var loggerMenu = []string{
	"Demonstrate the logger adapter",
	"Demonstrate the actual logger",
	"Demonstrate exception errors",
	"Back",
}

// logCapture collects console log lines for display in the output pane.
// The shared logger's console handler is pointed here while the demo runs.
type logCapture struct {
	mu    sync.Mutex
	lines []string
}

// Write implements io.Writer.
func (c *logCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		c.lines = append(c.lines, line)
	}
	return len(p), nil
}

// Drain returns and clears the captured lines.
func (c *logCapture) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := c.lines
	c.lines = nil
	return lines
}

// Model holds the demo TUI state.
type Model struct {
	cfg     *config.Config
	capture *logCapture

	screen     screen
	cursor     int
	contextTi  textinput.Model
	output     []string
	outputFrom screen // where to return when leaving the output view
	errMessage string
	width      int
	height     int
	quitting   bool
}

// NewModel creates the demo model. The capture writer must already be
// installed as the shared logger's console destination.
func NewModel(cfg *config.Config, capture *logCapture) Model {
	ti := textinput.New()
	ti.Placeholder = "context text for the adapter"
	ti.CharLimit = 60
	ti.Width = 40

	return Model{
		cfg:       cfg,
		capture:   capture,
		contextTi: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenContextInput:
			return m.updateContextInput(msg)
		case screenOutput:
			// Any key leaves the output view.
			m.screen = m.outputFrom
			m.output = nil
			return m, nil
		default:
			return m.updateMenu(msg)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := mainMenu
	if m.screen == screenLoggerMenu {
		items = loggerMenu
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "esc":
		if m.screen == screenLoggerMenu {
			m.screen = screenMain
			m.cursor = 0
		}
	case "enter":
		return m.selectItem()
	}
	return m, nil
}

func (m Model) selectItem() (tea.Model, tea.Cmd) {
	if m.screen == screenMain {
		switch m.cursor {
		case 0:
			m.showOutput(screenMain, strings.Split(helpText, "\n"))
		case 1:
			m.showOutput(screenMain, m.configLines())
		case 2:
			m.showOutput(screenMain, m.envLines())
		case 3:
			m.screen = screenLoggerMenu
			m.cursor = 0
		case 4:
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Logger demonstrations submenu.
	switch m.cursor {
	case 0:
		m.screen = screenContextInput
		m.contextTi.SetValue("")
		m.contextTi.Focus()
		return m, textinput.Blink
	case 1:
		m.showOutput(screenLoggerMenu, m.runLoggerDemo())
	case 2:
		m.showOutput(screenLoggerMenu, m.runExceptionDemo())
	case 3:
		m.screen = screenMain
		m.cursor = 0
	}
	return m, nil
}

func (m *Model) updateContextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return *m, tea.Quit
	case "esc":
		m.screen = screenLoggerMenu
		return *m, nil
	case "enter":
		lines := m.runAdapterDemo(m.contextTi.Value())
		m.showOutput(screenLoggerMenu, lines)
		return *m, nil
	}

	var cmd tea.Cmd
	m.contextTi, cmd = m.contextTi.Update(msg)
	return *m, cmd
}

// showOutput switches to the output view with the given lines.
func (m *Model) showOutput(from screen, lines []string) {
	m.outputFrom = from
	m.output = lines
	m.screen = screenOutput
}

// configLines renders the configuration snapshot for display.
func (m Model) configLines() []string {
	return []string{
		"Configuration snapshot (read-only, built once at startup):",
		"",
		fmt.Sprintf("  logging.name:        %s", m.cfg.Logging.Name),
		fmt.Sprintf("  logging.level:       %s", m.cfg.Logging.Level),
		fmt.Sprintf("  logging.directory:   %s", m.cfg.Logging.Directory),
		fmt.Sprintf("  logging.date_suffix: %v", m.cfg.Logging.DateSuffix),
		fmt.Sprintf("  example.some_number: %d", m.cfg.Example.SomeNumber),
		fmt.Sprintf("  example.boolean:     %v", m.cfg.Example.Boolean),
		"",
		fmt.Sprintf("  log file: %s", m.cfg.LogFilePath()),
		"",
		"Usage: cfg := config.Get(); cfg.Logging.Level",
	}
}

// envLines reports whether the sample .env keys reached the environment.
func (m Model) envLines() []string {
	lines := []string{
		"Values from a project-root .env file are loaded into the",
		"process environment at startup (existing variables win).",
		"",
	}
	for _, key := range []string{"SECRET_API_TOKEN", "USER", "PASSWORD"} {
		if value, ok := os.LookupEnv(key); ok {
			lines = append(lines, fmt.Sprintf("  %s is set (contents: %s)", key, value))
		} else {
			lines = append(lines, fmt.Sprintf("  %s is not set", key))
		}
	}
	return lines
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("leango"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("shared logger and centralized config, demonstrated"))
	sb.WriteString("\n\n")

	switch m.screen {
	case screenOutput:
		sb.WriteString(m.viewOutput())
		sb.WriteString(styles.HelpBar.Render("press any key to return"))
	case screenContextInput:
		sb.WriteString("Enter a context text to bind to the adapter:\n\n")
		sb.WriteString(m.contextTi.View())
		sb.WriteString("\n")
		sb.WriteString(styles.HelpBar.Render("enter: run demo • esc: back"))
	default:
		sb.WriteString(m.viewMenu())
		sb.WriteString(styles.HelpBar.Render("↑/↓: move • enter: select • q: quit"))
	}

	if m.errMessage != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.Error.Render(m.errMessage))
	}
	return sb.String()
}

func (m Model) viewMenu() string {
	items := mainMenu
	if m.screen == screenLoggerMenu {
		items = loggerMenu
	}

	var sb strings.Builder
	for i, item := range items {
		if i == m.cursor {
			sb.WriteString(styles.MenuItemSelected.Render("> " + item))
		} else {
			sb.WriteString(styles.MenuItem.Render("  " + item))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewOutput() string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	lines := make([]string, len(m.output))
	for i, line := range m.output {
		lines[i] = util.TruncateANSI(line, width-4)
	}
	return styles.OutputPane.Render(strings.Join(lines, "\n")) + "\n"
}

// acquireAdapter pulls an adapter from the shared registry, turning an
// acquisition failure into an error message in the UI.
func (m *Model) acquireAdapter(ctx logging.Context) (*logging.Adapter, bool) {
	adapter, err := logging.GetAdapter(ctx)
	if err != nil {
		m.errMessage = err.Error()
		return nil, false
	}
	return adapter, true
}
