package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leanstack/leango/internal/config"
	"github.com/leanstack/leango/internal/logging"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the log file",
	Long: `View and filter the log file the shared logger writes to.

By default, shows the most recent log file in the configured log
directory. Use flags to filter and format the output.

Examples:
  # Show the last 50 lines
  leango logs

  # Show the whole file
  leango logs -n 0

  # Follow new lines in real-time
  leango logs -f

  # Filter by minimum log level
  leango logs --level warning

  # Show lines from the last hour
  leango logs --since 1h

  # Search for specific patterns
  leango logs --grep "error|failed"`,
	RunE: runLogs,
}

var (
	logsFile   string
	logsTail   int
	logsFollow bool
	logsLevel  string
	logsSince  string
	logsGrep   string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringVar(&logsFile, "file", "", "Log file path (default: most recent in the log directory)")
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warning/error/critical)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter logs matching pattern (regex)")
}

// logEntry is a parsed log file line.
type logEntry struct {
	Time     time.Time
	Name     string
	Level    string
	Location string
	Msg      string
}

// logLinePattern matches the log file format:
// [2025-01-02 15:04:05] LeanGo       INFO     [main.go:42] message
var logLinePattern = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\] (\S+)\s+(\S+)\s+\[([^\]]+)\] (.*)$`)

// parseLogLine parses a single line; ok is false for lines that do not
// match the format, such as stack trace continuations.
func parseLogLine(line string) (logEntry, bool) {
	m := logLinePattern.FindStringSubmatch(line)
	if m == nil {
		return logEntry{}, false
	}
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", m[1], time.Local)
	if err != nil {
		return logEntry{}, false
	}
	return logEntry{
		Time:     ts,
		Name:     m[2],
		Level:    m[3],
		Location: m[4],
		Msg:      m[5],
	}, true
}

// ANSI color codes for terminal output
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorBlue    = "\033[34m"
	colorYellow  = "\033[33m"
	colorRed     = "\033[31m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// levelColor returns the ANSI color code for a log level
func levelColor(level string) string {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return colorGray
	case logging.LevelInfo:
		return colorBlue
	case logging.LevelWarning:
		return colorYellow
	case logging.LevelError:
		return colorRed
	case logging.LevelCritical:
		return colorMagenta
	default:
		return colorReset
	}
}

// levelPriority returns the priority of a log level for filtering
func levelPriority(level string) int {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return 0
	case logging.LevelInfo:
		return 1
	case "WARN", logging.LevelWarning:
		return 2
	case logging.LevelError:
		return 3
	case logging.LevelCritical:
		return 4
	default:
		return -1
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry *logEntry) string {
	var sb strings.Builder

	// Timestamp
	sb.WriteString(colorGray)
	sb.WriteString("[")
	sb.WriteString(entry.Time.Format("15:04:05"))
	sb.WriteString("]")
	sb.WriteString(colorReset)

	// Level with color
	sb.WriteString(" ")
	sb.WriteString(levelColor(entry.Level))
	sb.WriteString("[")
	sb.WriteString(strings.ToUpper(entry.Level))
	sb.WriteString("]")
	sb.WriteString(colorReset)

	// Caller location
	sb.WriteString(" ")
	sb.WriteString(colorCyan)
	sb.WriteString(entry.Location)
	sb.WriteString(colorReset)

	// Message
	sb.WriteString(" ")
	sb.WriteString(entry.Msg)

	return sb.String()
}

// latestLogFile picks the most recently modified regular file in the log
// directory.
func latestLogFile(dir string) (string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read log directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var candidates []candidate
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(dir, de.Name()),
			modTime: info.ModTime(),
		})
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no log files found in %s", dir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})
	return candidates[0].path, nil
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	logPath := logsFile
	if logPath == "" {
		var err error
		logPath, err = latestLogFile(cfg.Logging.Directory)
		if err != nil {
			fmt.Println("No logs found.")
			fmt.Println("Logs are written to:", cfg.LogFilePath())
			return nil
		}
	}

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Printf("No log file at %s\n", logPath)
		return nil
	}

	// Parse filter options
	minLevel := -1
	if logsLevel != "" {
		minLevel = levelPriority(logsLevel)
		if minLevel < 0 {
			return fmt.Errorf("invalid level: %s", logsLevel)
		}
	}

	var sinceTime time.Time
	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid duration format: %w", err)
		}
		sinceTime = time.Now().Add(-duration)
	}

	var grepRegex *regexp.Regexp
	if logsGrep != "" {
		var err error
		grepRegex, err = regexp.Compile(logsGrep)
		if err != nil {
			return fmt.Errorf("invalid grep pattern: %w", err)
		}
	}

	if logsFollow {
		return followLogs(logPath, minLevel, sinceTime, grepRegex)
	}

	return displayLogs(logPath, logsTail, minLevel, sinceTime, grepRegex)
}

// displayLogs reads the log file and displays filtered entries
func displayLogs(logPath string, tail int, minLevel int, sinceTime time.Time, grepRegex *regexp.Regexp) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)

	// Increase buffer size for potentially long log lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if formatted, ok := filterLine(line, minLevel, sinceTime, grepRegex); ok {
			entries = append(entries, formatted)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	// Apply tail limit
	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}

	for _, entry := range entries {
		fmt.Println(entry)
	}

	if len(entries) == 0 {
		fmt.Println("No matching log entries found.")
	}

	return nil
}

// followLogs implements tail -f behavior for the log file, waking on
// filesystem notifications instead of polling.
func followLogs(logPath string, minLevel int, sinceTime time.Time, grepRegex *regexp.Regexp) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	// Seek to end of file
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watching the directory survives the file being rotated away.
	if err := watcher.Add(filepath.Dir(logPath)); err != nil {
		return fmt.Errorf("failed to watch log directory: %w", err)
	}

	fmt.Printf("Following %s... (Ctrl+C to stop)\n\n", logPath)

	reader := bufio.NewReader(file)
	emit := func() error {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return fmt.Errorf("error reading log file: %w", err)
			}
			line = strings.TrimRight(line, "\n")
			if line == "" {
				continue
			}
			if formatted, ok := filterLine(line, minLevel, sinceTime, grepRegex); ok {
				fmt.Println(formatted)
			}
		}
	}

	// Catch up on anything written between open and watch.
	if err := emit(); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != logPath || !event.Has(fsnotify.Write) {
				continue
			}
			if err := emit(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// filterLine applies the level, time and grep filters to one line.
// Unparseable lines (stack trace continuations) pass through untouched
// unless a grep pattern rejects them.
func filterLine(line string, minLevel int, sinceTime time.Time, grepRegex *regexp.Regexp) (string, bool) {
	entry, ok := parseLogLine(line)
	if !ok {
		if grepRegex != nil && !grepRegex.MatchString(line) {
			return "", false
		}
		return line, true
	}

	if minLevel >= 0 && levelPriority(entry.Level) < minLevel {
		return "", false
	}
	if !sinceTime.IsZero() && entry.Time.Before(sinceTime) {
		return "", false
	}
	if grepRegex != nil && !grepRegex.MatchString(entry.Msg) {
		return "", false
	}

	return formatLogEntry(&entry), true
}
