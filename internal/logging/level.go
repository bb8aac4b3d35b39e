package logging

import (
	"log/slog"
	"strings"

	"github.com/leanstack/leango/internal/errors"
)

// Log levels supported by the logger, ordered by severity.
const (
	LevelDebug    = "DEBUG"
	LevelInfo     = "INFO"
	LevelWarning  = "WARNING"
	LevelError    = "ERROR"
	LevelCritical = "CRITICAL"
)

// slogLevelCritical extends the slog scale above ERROR. slog itself stops
// at Error; CRITICAL keeps the original five-level scale intact.
const slogLevelCritical = slog.LevelError + 4

// parseLevel converts a level string to its slog threshold. The comparison
// is case-insensitive and accepts the WARN shorthand for WARNING.
//
// An unrecognized level is a hard configuration error: it must surface
// before any handler is attached.
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarning, "WARN":
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	case LevelCritical:
		return slogLevelCritical, nil
	default:
		return 0, errors.NewConfigurationError("unknown log level", errors.ErrInvalidLogLevel).
			WithKey("level").WithValue(level)
	}
}

// levelName renders a slog level using the five-level naming this package
// emits, including WARNING (not slog's WARN) and CRITICAL.
func levelName(l slog.Level) string {
	switch {
	case l >= slogLevelCritical:
		return LevelCritical
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarning
	case l >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// ValidLevels returns the list of valid log level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
}
