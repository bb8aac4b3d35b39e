// Package testutil provides testing utilities for leango tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// WriteEnvFile creates a .env file with the given key=value lines inside
// dir and returns dir. The file is cleaned up with the test's temp dir.
func WriteEnvFile(t *testing.T, dir string, vars map[string]string) string {
	t.Helper()

	var sb strings.Builder
	for key, value := range vars {
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(value)
		sb.WriteByte('\n')
	}
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("failed to write .env file: %v", err)
	}
	return dir
}

// ReadLogLines reads a log file and returns its non-empty lines.
func ReadLogLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// SyncBuffer is an in-memory io.Writer safe for concurrent writers, for
// capturing console log output in tests.
type SyncBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

// Write implements io.Writer.
func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

// String returns the captured output.
func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

// Lines returns the captured output split into non-empty lines.
func (b *SyncBuffer) Lines() []string {
	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
