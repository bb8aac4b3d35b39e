package tui

import (
	"fmt"

	"github.com/leanstack/leango/internal/logging"
)

// divisionByZeroError is the demo's documented domain error. Its Doc text
// shows up in the enriched exception line.
type divisionByZeroError struct {
	numerator int
}

func (e *divisionByZeroError) Error() string {
	return fmt.Sprintf("cannot divide %d by zero", e.numerator)
}

func (e *divisionByZeroError) Doc() string {
	return "Integer division requires a non-zero divisor."
}

// divide fails loudly instead of panicking so the exception demo has a
// real error value to report.
func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, &divisionByZeroError{numerator: a}
	}
	return a / b, nil
}

// runAdapterDemo emits one message per level through a context-bound
// adapter and returns the captured console lines.
func (m *Model) runAdapterDemo(contextText string) []string {
	ctx := logging.None
	if contextText != "" {
		ctx = logging.Text(contextText)
	}
	adapter, ok := m.acquireAdapter(ctx)
	if !ok {
		return nil
	}

	adapter.Debug("this message only shows at the DEBUG level")
	adapter.Info("the adapter prefixes every message with its context")
	adapter.Warning("the same shared logger sits behind every adapter")
	adapter.Error("errors go to the console and the log file alike")

	fields, ok := m.acquireAdapter(logging.Fields(
		logging.F("component", "demo"),
		logging.F("attempt", 1),
	))
	if !ok {
		return nil
	}
	fields.Info("field contexts render as key: value pairs")

	lines := []string{"Adapter demo — captured console output:", ""}
	return append(lines, m.capture.Drain()...)
}

// runLoggerDemo emits one message per level through the shared logger
// directly, without any context prefix.
func (m *Model) runLoggerDemo() []string {
	logger, err := logging.GetLogger()
	if err != nil {
		m.errMessage = err.Error()
		return nil
	}

	logger.Debug("this message only shows at the DEBUG level")
	logger.Info("every acquisition returns the same logger instance")
	logger.Warning("messages carry the caller's file and line")
	logger.Error("errors go to the console and the log file alike")
	logger.Critical("critical is the highest of the five levels")

	lines := []string{"Logger demo — captured console output:", ""}
	return append(lines, m.capture.Drain()...)
}

// runExceptionDemo provokes a division error and logs it with the
// enriched exception detail, once with a stack trace and once without.
func (m *Model) runExceptionDemo() []string {
	logger, err := logging.GetLogger()
	if err != nil {
		m.errMessage = err.Error()
		return nil
	}

	if _, divErr := divide(7, 0); divErr != nil {
		logger.ExceptionNoTrace("arithmetic demo failed", divErr)
	}

	adapter, ok := m.acquireAdapter(logging.Text("calculator"))
	if !ok {
		return nil
	}
	if _, divErr := divide(42, 0); divErr != nil {
		adapter.ExceptionNoTrace("adapter-side failure", divErr)
	}

	lines := []string{"Exception demo — captured console output:", ""}
	return append(lines, m.capture.Drain()...)
}
